package mandelbrot

import "fmt"

// DefaultMaxIterations is the iteration limit used when Settings leave it unset.
const DefaultMaxIterations uint32 = 10000

type Settings struct {
	BlendSpace    BlendSpace
	HighColor     Color
	LowColor      Color
	MaxIterations uint32
}

func (s *Settings) Verify() error {
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.BlendSpace < RGB || s.BlendSpace > Luv {
		return fmt.Errorf("unknown blend space %d", int(s.BlendSpace))
	}
	// LowColor and HighColor default to black, which renders every pixel black
	return nil
}

func (s *Settings) String() string {
	output := "{MandelbrotSettings "
	output += fmt.Sprintf("BlendSpace: %s ", s.BlendSpace)
	output += fmt.Sprintf("HighColor: %s ", s.HighColor)
	output += fmt.Sprintf("LowColor: %s ", s.LowColor)
	output += fmt.Sprintf("MaxIterations: %d}", s.MaxIterations)
	return output
}
