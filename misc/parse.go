package misc

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParsePair splits s around the first occurrence of separator. Both sides must be non-empty.
func ParsePair(s string, separator byte) (string, string, bool) {
	index := strings.IndexByte(s, separator)
	if index < 0 {
		return "", "", false
	}
	left, right := s[:index], s[index+1:]
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}

// ParseIntPair parses strings like "400x600" or "10,20".
func ParseIntPair(s string, separator byte) (int, int, bool) {
	left, right, ok := ParsePair(s, separator)
	if !ok {
		return 0, 0, false
	}
	l, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, false
	}
	r, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, false
	}
	return l, r, true
}

// ParseFloatPair parses strings like "1.0,0.5" or "0.5x1.5".
func ParseFloatPair(s string, separator byte) (float64, float64, bool) {
	left, right, ok := ParsePair(s, separator)
	if !ok {
		return 0, 0, false
	}
	l, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, 0, false
	}
	r, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, 0, false
	}
	return l, r, true
}

// ParseBounds parses image dimensions written as WIDTHxHEIGHT. Both must be positive.
func ParseBounds(s string) (int, int, bool) {
	width, height, ok := ParseIntPair(s, 'x')
	if !ok || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

// ParseComplex parses a point on the complex plane written as RE,IM.
func ParseComplex(s string) (float64, float64, bool) {
	return ParseFloatPair(s, ',')
}

// ParseTriple splits s into exactly three non-empty fields.
func ParseTriple(s string, separator byte) ([3]string, bool) {
	var out [3]string
	fields := strings.Split(s, string(separator))
	if len(fields) != 3 {
		return out, false
	}
	for i, field := range fields {
		if field == "" {
			return out, false
		}
		out[i] = field
	}
	return out, true
}

// ParseRGB parses a color written as R,G,B with every channel in [0, 255].
func ParseRGB(s string) (color.RGBA, bool) {
	fields, ok := ParseTriple(s, ',')
	if !ok {
		return color.RGBA{}, false
	}
	var channels [3]uint8
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		channels[i] = uint8(v)
	}
	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, true
}

// ParseColor accepts R,G,B triples and #rrggbb or #rgb hex colors.
func ParseColor(s string) (color.RGBA, bool) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, true
	}
	return ParseRGB(s)
}
