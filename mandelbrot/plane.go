package mandelbrot

import "fmt"

// Bounds is the size of a raster in pixels.
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

func (b Bounds) Verify() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid bounds %dx%d: width and height must be positive", b.Width, b.Height)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Rectangle is the region of the complex plane a raster covers. UpperLeft is expected to be above
// and left of LowerRight. A flipped rectangle is not an error and renders a mirrored image; a
// rectangle with zero width or height renders every pixel from the same line or point.
type Rectangle struct {
	UpperLeft  Point
	LowerRight Point
}

func (r Rectangle) Width() float64 {
	return r.LowerRight.Re - r.UpperLeft.Re
}

// Height is positive when UpperLeft is above LowerRight.
func (r Rectangle) Height() float64 {
	return r.UpperLeft.Im - r.LowerRight.Im
}

func (r Rectangle) Center() Point {
	return Point{
		Re: (r.UpperLeft.Re + r.LowerRight.Re) / 2,
		Im: (r.UpperLeft.Im + r.LowerRight.Im) / 2,
	}
}

// RectangleAround builds the rectangle of the given plane width and height centred on center.
func RectangleAround(center Point, width float64, height float64) Rectangle {
	return Rectangle{
		UpperLeft:  Point{Re: center.Re - width/2, Im: center.Im + height/2},
		LowerRight: Point{Re: center.Re + width/2, Im: center.Im - height/2},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%s %s]", r.UpperLeft, r.LowerRight)
}

// PixelToPoint converts the (column, row) pixel of a raster of the given bounds to the point of the
// plane it covers. Rows grow downward while the imaginary axis grows upward, so the Y axis is
// flipped. Pixels outside the raster extrapolate linearly: (Width, Height) maps to LowerRight.
func PixelToPoint(bounds Bounds, column int, row int, rect Rectangle) Point {
	return Point{
		Re: rect.UpperLeft.Re + float64(column)*rect.Width()/float64(bounds.Width),
		Im: rect.UpperLeft.Im - float64(row)*rect.Height()/float64(bounds.Height),
	}
}
