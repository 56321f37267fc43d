package mandelbrot

import "fmt"

type Mandelbrot struct {
	gradient Gradient
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	mandelbrot := Mandelbrot{
		gradient: Gradient{
			Low:   settings.LowColor,
			High:  settings.HighColor,
			Space: settings.BlendSpace,
		},
		settings: settings,
	}

	return mandelbrot
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

// ColorAt returns the color of a single point on the plane.
func (m *Mandelbrot) ColorAt(c Point) Color {
	iterations, escaped := EscapeTime(c, m.settings.MaxIterations)
	return m.gradient.At(Scalar(iterations, escaped, m.settings.MaxIterations))
}

// RenderBand fills pixels, a raster of the given bounds, with the region of the plane between
// upperLeft and lowerRight. The band is rendered as an image of its own so callers slicing a larger
// image must pass the corners of the slice, not of the whole image.
//
// A pixels slice whose length does not match bounds is a partitioning bug and panics.
func (m *Mandelbrot) RenderBand(pixels []Color, bounds Bounds, upperLeft Point, lowerRight Point) {
	if len(pixels) != bounds.Pixels() {
		panic(fmt.Sprintf("mandelbrot: band buffer holds %d pixels, bounds %s need %d", len(pixels), bounds, bounds.Pixels()))
	}

	rect := Rectangle{UpperLeft: upperLeft, LowerRight: lowerRight}
	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, column, row, rect)
			pixels[row*bounds.Width+column] = m.ColorAt(point)
		}
	}
}
