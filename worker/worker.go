package worker

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelbrot/mandelbrot"
	"mandelbrot/task"
)

type Settings struct {
	MandelbrotSettings mandelbrot.Settings
	Strategy           task.Strategy

	// WorkerCount defaults to the number of logical CPUs
	WorkerCount int
	Debug       bool
}

func (s *Settings) Verify() error {
	if err := s.MandelbrotSettings.Verify(); err != nil {
		return err
	}
	if s.WorkerCount <= 0 {
		s.WorkerCount = runtime.NumCPU()
	}
	if s.Strategy < task.Ceil || s.Strategy > task.Slack {
		return fmt.Errorf("unknown band strategy %d", int(s.Strategy))
	}
	return nil
}

func (s *Settings) String() string {
	output := "{WorkerSettings "
	output += fmt.Sprintf("Strategy: %s ", s.Strategy)
	output += fmt.Sprintf("WorkerCount: %d ", s.WorkerCount)
	output += fmt.Sprintf("Mandelbrot: %s}", s.MandelbrotSettings.String())
	return output
}

// Worker renders images by splitting them into row bands and rendering every band on its own
// goroutine.
type Worker struct {
	logger        bslogger.Logger
	mandelbrot    mandelbrot.Mandelbrot
	settings      Settings
	bandsRendered atomic.Int64
}

func NewWorker(settings Settings) (*Worker, error) {
	if err := settings.Verify(); err != nil {
		return nil, fmt.Errorf("invalid worker settings: %w", err)
	}

	logger := bslogger.NewLogger("Worker", bslogger.Normal, nil)
	if settings.Debug {
		logger = bslogger.NewLogger("Worker", bslogger.All, nil)
	}

	worker := &Worker{
		logger:     logger,
		mandelbrot: mandelbrot.NewMandelbrot(settings.MandelbrotSettings),
		settings:   settings,
	}
	worker.logger.Debug(settings.String())
	return worker, nil
}

func (w *Worker) Settings() Settings {
	return w.settings
}

// BandsRendered is the number of bands rendered by this worker so far.
func (w *Worker) BandsRendered() int64 {
	return w.bandsRendered.Load()
}

// Render computes the image of rect at the given bounds. The buffer is split into disjoint row
// bands, one goroutine renders each band into its own slice of the buffer, and Render returns
// once every band is done. Bounds must be positive.
//
// Each band maps its pixels from its own corners, so a pixel's plane coordinate can differ from a
// whole-image mapping by a few ulps. Output for a given worker count and strategy is always the
// same, but changing the worker count can change the color of boundary pixels unless the band
// corners are exact in binary floating point.
func (w *Worker) Render(bounds mandelbrot.Bounds, rect mandelbrot.Rectangle) *mandelbrot.Buffer {
	buffer := mandelbrot.NewBuffer(bounds)
	bands := task.Partition(bounds.Height, w.settings.WorkerCount, w.settings.Strategy)
	elapsed := make([]time.Duration, len(bands))

	var wg sync.WaitGroup
	startTime := time.Now()
	for _, band := range bands {
		pixels := buffer.Rows(band.Top, band.Height)
		bandBounds := mandelbrot.Bounds{Width: bounds.Width, Height: band.Height}
		upperLeft := mandelbrot.PixelToPoint(bounds, 0, band.Top, rect)
		lowerRight := mandelbrot.PixelToPoint(bounds, bounds.Width, band.Bottom(), rect)

		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			bandStart := time.Now()
			w.mandelbrot.RenderBand(pixels, bandBounds, upperLeft, lowerRight)
			elapsed[index] = time.Since(bandStart)
		}(band.Index)
	}
	wg.Wait()

	if len(buffer.Pix) != bounds.Pixels() {
		panic(fmt.Sprintf("worker: buffer holds %d pixels, bounds %s need %d", len(buffer.Pix), bounds, bounds.Pixels()))
	}

	w.bandsRendered.Add(int64(len(bands)))
	for i := range bands {
		w.logger.Debugf("Rendered %s in %s", bands[i].String(), elapsed[i])
	}
	w.logger.Debugf("Rendered %s image of %s in %d bands [%s]", bounds, rect, len(bands), time.Since(startTime))

	return buffer
}

// Render is the one-shot form of Worker.Render: it renders rect at bounds with a gradient from low
// to high using the given number of workers.
func Render(bounds mandelbrot.Bounds, rect mandelbrot.Rectangle, low mandelbrot.Color, high mandelbrot.Color, workers int) (*mandelbrot.Buffer, error) {
	worker, err := NewWorker(Settings{
		MandelbrotSettings: mandelbrot.Settings{LowColor: low, HighColor: high},
		WorkerCount:        workers,
	})
	if err != nil {
		return nil, err
	}
	return worker.Render(bounds, rect), nil
}
