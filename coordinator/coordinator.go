package coordinator

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/disintegration/imaging"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"mandelbrot/rpc"
	"mandelbrot/worker"
)

// Renderer renders one raster of the plane.
type Renderer interface {
	Render(bounds mandelbrot.Bounds, rect mandelbrot.Rectangle) (*mandelbrot.Buffer, error)
}

type localRenderer struct {
	*worker.Worker
}

func (lr localRenderer) Render(bounds mandelbrot.Bounds, rect mandelbrot.Rectangle) (*mandelbrot.Buffer, error) {
	return lr.Worker.Render(bounds, rect), nil
}

// Coordinator turns verified settings into image files: it works out every frame of the run,
// renders each one locally or on a remote server and encodes the result.
type Coordinator struct {
	frames   []mandelbrot.Rectangle
	logger   bslogger.Logger
	renderer Renderer
	settings Settings
}

func NewCoordinator(settings Settings) (*Coordinator, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	var renderer Renderer
	if settings.RemoteAddress != "" {
		renderer = &rpc.RemoteRenderer{
			Address:   settings.RemoteAddress,
			Settings:  settings.WorkerSettings,
			Transport: settings.RemoteTransport,
		}
	} else {
		w, err := worker.NewWorker(settings.WorkerSettings)
		if err != nil {
			return nil, err
		}
		renderer = localRenderer{w}
	}

	coordinator := &Coordinator{
		logger:   newLogger(settings.WorkerSettings.Debug, nil),
		renderer: renderer,
		settings: settings,
	}

	coordinator.frames = []mandelbrot.Rectangle{settings.Rectangle}
	start := settings.Rectangle
	for i := range settings.TransitionSettings {
		coordinator.frames = append(coordinator.frames, settings.TransitionSettings[i].Frames(start)...)
		start = settings.TransitionSettings[i].EndRectangle
	}

	return coordinator, nil
}

func newLogger(debug bool, logFile *os.File) bslogger.Logger {
	if debug {
		return bslogger.NewLogger("Coordinator", bslogger.All, logFile)
	}
	return bslogger.NewLogger("Coordinator", bslogger.Normal, logFile)
}

// Frames lists the view of every image the run produces, in order.
func (c *Coordinator) Frames() []mandelbrot.Rectangle {
	return c.frames
}

// RenderFrame renders one view at the configured bounds. With supersampling the view is rendered
// at a multiple of the bounds and scaled down.
func (c *Coordinator) RenderFrame(rect mandelbrot.Rectangle) (image.Image, error) {
	factor := c.settings.SuperSampling
	if factor <= 1 {
		buffer, err := c.renderer.Render(c.settings.Bounds, rect)
		if err != nil {
			return nil, err
		}
		return buffer, nil
	}

	large, err := c.renderer.Render(mandelbrot.Bounds{
		Width:  c.settings.Bounds.Width * factor,
		Height: c.settings.Bounds.Height * factor,
	}, rect)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(large, c.settings.Bounds.Width, c.settings.Bounds.Height, imaging.Lanczos), nil
}

// Run renders and saves every frame and returns the paths written. A single image with an
// OutputFile goes straight to that file; anything else is written as numbered frames into
// SavePath/RunName next to a copy of the settings and a log of the run.
func (c *Coordinator) Run() ([]string, error) {
	if c.settings.OutputFile != "" && len(c.frames) == 1 {
		if err := c.save(c.frames[0], c.settings.OutputFile); err != nil {
			return nil, err
		}
		return []string{c.settings.OutputFile}, nil
	}

	runPath := filepath.Join(c.settings.SavePath, c.settings.RunName)
	if err := os.MkdirAll(runPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create folder %s - %w", runPath, err)
	}

	// Copy the settings to the directory so the run can be duplicated in the future
	settingsBytes, err := json.MarshalIndent(c.settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to encode settings - %w", err)
	}
	if _, err := misc.WriteFile(filepath.Join(runPath, "settings.json"), settingsBytes); err != nil {
		return nil, err
	}

	// Record the run next to the images
	logFile, err := os.Create(filepath.Join(runPath, "coordinator.log"))
	if !misc.CheckErrorf(err, &c.logger, misc.Warning, "Unable to create run log") {
		c.logger = newLogger(c.settings.WorkerSettings.Debug, logFile)
		defer func() {
			c.logger = newLogger(c.settings.WorkerSettings.Debug, nil)
			logFile.Close()
		}()
	}

	c.logger.Infof("Rendering %d frames of %s into %s", len(c.frames), c.settings.Bounds, runPath)
	paths := make([]string, 0, len(c.frames))
	startTime := time.Now()
	for i, rect := range c.frames {
		path := filepath.Join(runPath, fmt.Sprintf("%d.%s", i+1, c.settings.Format))
		if err := c.save(rect, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		c.logger.Infof("Saved image to %s [%d/%d]", path, i+1, len(c.frames))
	}
	c.logger.Infof("Done rendering %d frames in %s", len(paths), time.Since(startTime))

	return paths, nil
}

func (c *Coordinator) save(rect mandelbrot.Rectangle, path string) error {
	frameStart := time.Now()
	img, err := c.RenderFrame(rect)
	if err != nil {
		return fmt.Errorf("unable to render %s - %w", rect, err)
	}
	c.logger.Debugf("Rendered %s in %s", rect, time.Since(frameStart))

	if err := imaging.Save(img, path, imaging.JPEGQuality(c.settings.JPEGQuality)); err != nil {
		return fmt.Errorf("unable to save image %s - %w", path, err)
	}
	return nil
}
