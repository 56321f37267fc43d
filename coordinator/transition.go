package coordinator

import (
	"errors"

	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
)

// TransitionSettings moves the view from wherever the previous frame ended to EndRectangle over
// FrameCount frames. The size of the view changes geometrically so a zoom looks steady; the centre
// is eased toward its destination.
type TransitionSettings struct {
	EndRectangle mandelbrot.Rectangle
	FrameCount   uint
}

func (ts *TransitionSettings) Verify(start mandelbrot.Rectangle) error {
	if ts.FrameCount == 0 {
		ts.FrameCount = 1
	}
	if ts.EndRectangle.Width() <= 0 || ts.EndRectangle.Height() <= 0 {
		return errors.New("end rectangle must have its upper left corner above and left of its lower right corner")
	}
	if start.Width() <= 0 || start.Height() <= 0 {
		return errors.New("transitions cannot start from a flipped rectangle")
	}
	return nil
}

// Frames returns the FrameCount views of the transition starting from start. The starting view
// itself is not included; the last view is exactly EndRectangle.
func (ts *TransitionSettings) Frames(start mandelbrot.Rectangle) []mandelbrot.Rectangle {
	end := ts.EndRectangle
	startCenter, endCenter := start.Center(), end.Center()
	zoomingIn := end.Width() < start.Width()

	frames := make([]mandelbrot.Rectangle, 0, ts.FrameCount)
	var currentFrame uint
	for currentFrame = 1; currentFrame < ts.FrameCount; currentFrame++ {
		t := float64(currentFrame) / float64(ts.FrameCount)

		eased := misc.EaseInExpo(t)
		if zoomingIn {
			eased = misc.EaseOutExpo(t)
		}
		center := mandelbrot.Point{
			Re: misc.LerpFloat64(startCenter.Re, endCenter.Re, eased),
			Im: misc.LerpFloat64(startCenter.Im, endCenter.Im, eased),
		}
		frames = append(frames, mandelbrot.RectangleAround(center,
			misc.LerpGeometric(start.Width(), end.Width(), t),
			misc.LerpGeometric(start.Height(), end.Height(), t),
		))
	}
	return append(frames, end)
}
