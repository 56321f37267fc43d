package mandelbrot

import (
	"fmt"
	"image"
	"image/color"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Buffer is a row-major raster of Colors. The pixel at (column, row) lives at
// Pix[row*Size.Width+column].
//
// Buffer implements image.Image so it can be handed to any image encoder as is.
type Buffer struct {
	Size Bounds
	Pix  []Color
}

// NewBuffer allocates a buffer for bounds with every pixel black.
func NewBuffer(bounds Bounds) *Buffer {
	return &Buffer{
		Size: bounds,
		Pix:  make([]Color, bounds.Pixels()),
	}
}

// BufferFromRGB rebuilds a buffer from the byte stream produced by RGB.
func BufferFromRGB(bounds Bounds, rgb []byte) (*Buffer, error) {
	if len(rgb) != 3*bounds.Pixels() {
		return nil, fmt.Errorf("expected %d bytes for %s, got %d", 3*bounds.Pixels(), bounds, len(rgb))
	}
	b := NewBuffer(bounds)
	for i := range b.Pix {
		b.Pix[i] = Color{R: rgb[3*i], G: rgb[3*i+1], B: rgb[3*i+2]}
	}
	return b, nil
}

// Rows returns the pixels of rows [top, top+height). The slice capacity ends with the last row so
// appending to it can never overwrite the rows that follow.
func (b *Buffer) Rows(top int, height int) []Color {
	start := top * b.Size.Width
	end := (top + height) * b.Size.Width
	return b.Pix[start:end:end]
}

// RGB returns the pixels as 3 bytes per pixel in R, G, B order, row-major.
func (b *Buffer) RGB() []byte {
	out := make([]byte, 0, 3*len(b.Pix))
	for _, c := range b.Pix {
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Size.Width, b.Size.Height)
}

// Opaque reports that every pixel is fully opaque, which lets encoders skip the alpha channel.
func (b *Buffer) Opaque() bool {
	return true
}

func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.Size.Width || y >= b.Size.Height {
		return color.RGBA{}
	}
	return b.Pix[y*b.Size.Width+x]
}
