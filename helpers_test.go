package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/task"
)

func TestBuildSettings_Positional(t *testing.T) {
	blendSpace, strategy = "hcl", "slack"
	maxIterations, workerCount, superSampling = 500, 3, 2
	logger := bslogger.NewLogger("Test", bslogger.Normal, nil)

	s := buildSettings(&logger, []string{"mandel.jpeg", "1000x750", "-1.20,0.35", "-1,0.20", "0,0,0", "#ff8000"})

	if s.Bounds != (mandelbrot.Bounds{Width: 1000, Height: 750}) {
		t.Errorf("Bounds: got %s", s.Bounds)
	}
	wantRect := mandelbrot.Rectangle{
		UpperLeft:  mandelbrot.Point{Re: -1.2, Im: 0.35},
		LowerRight: mandelbrot.Point{Re: -1, Im: 0.2},
	}
	if s.Rectangle != wantRect {
		t.Errorf("Rectangle: got %s, want %s", s.Rectangle, wantRect)
	}
	if s.OutputFile != "mandel.jpeg" || s.Format != "jpeg" {
		t.Errorf("output: got %s as %s", s.OutputFile, s.Format)
	}
	if s.SuperSampling != 2 {
		t.Errorf("SuperSampling: got %d, want 2", s.SuperSampling)
	}

	ws := s.WorkerSettings
	if ws.Strategy != task.Slack || ws.WorkerCount != 3 {
		t.Errorf("WorkerSettings: got %s", ws.String())
	}
	ms := ws.MandelbrotSettings
	if ms.BlendSpace != mandelbrot.HCL || ms.MaxIterations != 500 {
		t.Errorf("MandelbrotSettings: got %s", ms.String())
	}
	if ms.LowColor != (mandelbrot.Color{}) || ms.HighColor != (mandelbrot.Color{R: 255, G: 128, B: 0}) {
		t.Errorf("colors: got %s and %s", ms.LowColor, ms.HighColor)
	}
}

func TestBuildSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	contents := `{"Bounds": {"Width": 64, "Height": 48}, "WorkerSettings": {"Strategy": "slack", "WorkerCount": 5}}`
	if _, err := misc.WriteFile(path, []byte(contents)); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settingsFile = path
	defer func() { settingsFile = "" }()
	strategy, workerCount = "ceil", 1
	logger := bslogger.NewLogger("Test", bslogger.Normal, nil)

	// Flags that were not given on the command line leave the file's values alone
	s := buildSettings(&logger, nil)
	if s.WorkerSettings.Strategy != task.Slack || s.WorkerSettings.WorkerCount != 5 {
		t.Errorf("WorkerSettings: got %s", s.WorkerSettings.String())
	}
	if s.Bounds != (mandelbrot.Bounds{Width: 64, Height: 48}) {
		t.Errorf("Bounds: got %s", s.Bounds)
	}
}

func TestIterationLimit(t *testing.T) {
	tests := []struct {
		name    string
		n       uint64
		want    uint32
		wantErr bool
	}{
		{"zero keeps the default", 0, 0, false},
		{"usual", 10000, 10000, false},
		{"largest", math.MaxUint32, math.MaxUint32, false},
		{"one too many", math.MaxUint32 + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint64(uint(tt.n)) != tt.n {
				t.Skip("uint is too narrow on this platform")
			}
			got, err := iterationLimit(uint(tt.n))
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v, want error %t", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
