package task

import (
	"fmt"
	"strings"
)

const (
	// Ceil gives every band ceil(height/workers) rows.
	Ceil Strategy = iota
	// Slack gives every band height/workers+1 rows. Bands can end up a row taller than needed and
	// fewer bands than workers may be produced.
	Slack
)

// Strategy decides how many rows each band of an image gets.
type Strategy int

func (s Strategy) String() string {
	names := []string{"ceil", "slack"}
	if s < Ceil || int(s) >= len(names) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return names[s]
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "ceil":
		return Ceil, nil
	case "slack":
		return Slack, nil
	}
	return Ceil, fmt.Errorf("unknown band strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Band is a run of whole image rows [Top, Top+Height) rendered by one worker.
type Band struct {
	Index  int
	Top    int
	Height int
}

// Bottom is the first row after the band.
func (b Band) Bottom() int {
	return b.Top + b.Height
}

func (b *Band) String() string {
	return fmt.Sprintf("{Band Index: %d Rows: [%d, %d)}", b.Index, b.Top, b.Bottom())
}

// RowsPerBand returns the nominal band height for an image of height rows split across workers.
// Fewer than one worker counts as one.
func RowsPerBand(height int, workers int, strategy Strategy) int {
	if workers < 1 {
		workers = 1
	}
	if strategy == Slack {
		return height/workers + 1
	}
	rows := (height + workers - 1) / workers
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Partition splits rows [0, height) into consecutive bands of RowsPerBand rows. The last band
// holds whatever rows remain, so bands never overlap and every row belongs to exactly one band.
func Partition(height int, workers int, strategy Strategy) []Band {
	rows := RowsPerBand(height, workers, strategy)

	bands := make([]Band, 0, (height+rows-1)/rows)
	for top := 0; top < height; top += rows {
		bandHeight := rows
		if top+bandHeight > height {
			bandHeight = height - top
		}
		bands = append(bands, Band{
			Index:  len(bands),
			Top:    top,
			Height: bandHeight,
		})
	}
	return bands
}
