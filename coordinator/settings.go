package coordinator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/disintegration/imaging"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"mandelbrot/worker"
)

// DefaultRectangle frames the whole set.
var DefaultRectangle = mandelbrot.Rectangle{
	UpperLeft:  mandelbrot.Point{Re: -2.5, Im: 1.25},
	LowerRight: mandelbrot.Point{Re: 1, Im: -1.25},
}

// Settings describe a run. When RemoteAddress is set every frame is rendered by the Renderer
// server at that address over RemoteTransport.
type Settings struct {
	logger bslogger.Logger

	Bounds             mandelbrot.Bounds
	Format             string
	JPEGQuality        int
	OutputFile         string
	Rectangle          mandelbrot.Rectangle
	RemoteAddress      string
	RemoteTransport    string
	RunName            string
	SavePath           string
	SuperSampling      int
	TransitionSettings []TransitionSettings
	WorkerSettings     worker.Settings
}

// NewSettings reads and verifies a JSON settings file.
func NewSettings(settingsFile string) (Settings, error) {
	var s Settings
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to decode %s - %w", settingsFile, err)
	}
	if err := s.Verify(); err != nil {
		return s, fmt.Errorf("invalid settings in %s - %w", settingsFile, err)
	}
	return s, nil
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Bounds: %s\n", s.Bounds)
	output += fmt.Sprintf("Rectangle: %s\n", s.Rectangle)
	output += fmt.Sprintf("Format: %s\n", s.Format)
	output += fmt.Sprintf("OutputFile: %s\n", s.OutputFile)
	output += fmt.Sprintf("Remote: %s %s\n", s.RemoteTransport, s.RemoteAddress)
	output += fmt.Sprintf("RunName: %s\n", s.RunName)
	output += fmt.Sprintf("SavePath: %s\n", s.SavePath)
	output += fmt.Sprintf("SuperSampling: %d\n", s.SuperSampling)
	output += fmt.Sprintf("Transitions: %d\n", len(s.TransitionSettings))
	output += fmt.Sprintf("Worker: %s\n", s.WorkerSettings.String())
	return output
}

// Verify fills in defaults and rejects settings that cannot be rendered.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if s.Bounds == (mandelbrot.Bounds{}) {
		s.Bounds = mandelbrot.Bounds{Width: 1920, Height: 1080}
	}
	if err := s.Bounds.Verify(); err != nil {
		return err
	}
	if s.Rectangle == (mandelbrot.Rectangle{}) {
		s.Rectangle = DefaultRectangle
	}
	if err := s.WorkerSettings.Verify(); err != nil {
		return err
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.JPEGQuality <= 0 || s.JPEGQuality > 100 {
		s.JPEGQuality = 95
	}

	if s.OutputFile != "" {
		if len(s.TransitionSettings) > 0 {
			return errors.New("OutputFile names a single image but transitions produce several")
		}
		if _, err := imaging.FormatFromFilename(s.OutputFile); err != nil {
			return fmt.Errorf("output file %s - %w", s.OutputFile, err)
		}
		s.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(s.OutputFile)), ".")
	}
	if s.Format == "" {
		s.Format = "png"
	}
	s.Format = strings.ToLower(s.Format)
	if _, err := imaging.FormatFromFilename("frame." + s.Format); err != nil {
		return fmt.Errorf("format %s - %w", s.Format, err)
	}

	if s.RemoteTransport == "" {
		s.RemoteTransport = rpc.TCP
	}
	if _, err := rpc.NewClient(s.RemoteTransport, s.RemoteAddress); err != nil {
		return err
	}

	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}

	// Every transition starts where the previous one ended
	start := s.Rectangle
	for i := range s.TransitionSettings {
		if err := s.TransitionSettings[i].Verify(start); err != nil {
			return fmt.Errorf("transition %d - %w", i+1, err)
		}
		start = s.TransitionSettings[i].EndRectangle
	}

	if s.WorkerSettings.Debug {
		s.logger.Info(s.String())
	}
	return nil
}
