package mandelbrot

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"mandelbrot/misc"
)

const (
	RGB BlendSpace = iota
	Lab
	HCL
	Luv
)

// BlendSpace selects the color space a Gradient interpolates in.
type BlendSpace int

func (bs BlendSpace) String() string {
	names := []string{"rgb", "lab", "hcl", "luv"}
	if bs < 0 || int(bs) >= len(names) {
		return fmt.Sprintf("BlendSpace(%d)", int(bs))
	}
	return names[bs]
}

func ParseBlendSpace(name string) (BlendSpace, error) {
	switch strings.ToLower(name) {
	case "", "rgb":
		return RGB, nil
	case "lab":
		return Lab, nil
	case "hcl":
		return HCL, nil
	case "luv":
		return Luv, nil
	}
	return RGB, fmt.Errorf("unknown blend space %q", name)
}

func (bs BlendSpace) MarshalText() ([]byte, error) {
	return []byte(bs.String()), nil
}

func (bs *BlendSpace) UnmarshalText(text []byte) error {
	parsed, err := ParseBlendSpace(string(text))
	if err != nil {
		return err
	}
	*bs = parsed
	return nil
}

// Gradient interpolates between two endpoint colors.
type Gradient struct {
	Low   Color
	High  Color
	Space BlendSpace
}

// At returns the color a fraction t of the way from Low to High. In RGB space each channel is
// low + t*(high-low) truncated, so t == 0 yields Low and t == 1 yields High exactly. Values of t
// outside [0, 1] extrapolate and saturate at the channel limits.
func (g Gradient) At(t float32) Color {
	if g.Space == RGB {
		return Color{
			R: lerpChannel(g.Low.R, g.High.R, t),
			G: lerpChannel(g.Low.G, g.High.G, t),
			B: lerpChannel(g.Low.B, g.High.B, t),
		}
	}

	low, high := toColorful(g.Low), toColorful(g.High)
	var blended colorful.Color
	switch g.Space {
	case Lab:
		blended = low.BlendLab(high, float64(t))
	case HCL:
		blended = low.BlendHcl(high, float64(t))
	case Luv:
		blended = low.BlendLuv(high, float64(t))
	default:
		blended = low.BlendRgb(high, float64(t))
	}
	r, gr, b := blended.Clamped().RGB255()
	return Color{R: r, G: gr, B: b}
}

// Scalar maps an escape result to a gradient position. Points that escape after few iterations get
// values close to 1; presumed members of the set get 0.
func Scalar(iterations uint32, escaped bool, limit uint32) float32 {
	if !escaped || limit == 0 {
		return 0
	}
	return float32(limit-iterations) / float32(limit)
}

func lerpChannel(low uint8, high uint8, t float32) uint8 {
	v := misc.LerpFloat64(float64(low), float64(high), float64(t))
	return uint8(math.Max(0, math.Min(255, v)))
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
