package mandelbrot

import "testing"

func TestGradientAt_Endpoints(t *testing.T) {
	pairs := []Gradient{
		{Low: Color{0, 0, 0}, High: Color{255, 255, 255}},
		{Low: Color{255, 128, 0}, High: Color{10, 20, 30}},
		{Low: Color{7, 7, 7}, High: Color{7, 7, 7}},
		{Low: Color{0, 255, 0}, High: Color{255, 0, 255}},
	}

	for _, g := range pairs {
		if got := g.At(0); got != g.Low {
			t.Errorf("%s-%s at 0: got %s, want %s", g.Low, g.High, got, g.Low)
		}
		if got := g.At(1); got != g.High {
			t.Errorf("%s-%s at 1: got %s, want %s", g.Low, g.High, got, g.High)
		}
	}
}

func TestGradientAt_Intermediate(t *testing.T) {
	g := Gradient{Low: Color{0, 100, 200}, High: Color{255, 200, 0}}

	if got, want := g.At(0.5), (Color{127, 150, 100}); got != want {
		t.Errorf("at 0.5: got %s, want %s", got, want)
	}
	if got, want := g.At(0.25), (Color{63, 125, 150}); got != want {
		t.Errorf("at 0.25: got %s, want %s", got, want)
	}
}

func TestGradientAt_OutOfRangeSaturates(t *testing.T) {
	g := Gradient{Low: Color{0, 100, 200}, High: Color{200, 100, 0}}

	if got, want := g.At(2), (Color{255, 100, 0}); got != want {
		t.Errorf("at 2: got %s, want %s", got, want)
	}
	if got, want := g.At(-1), (Color{0, 100, 255}); got != want {
		t.Errorf("at -1: got %s, want %s", got, want)
	}
}

func TestGradientAt_PerceptualSpaces(t *testing.T) {
	for _, space := range []BlendSpace{Lab, HCL, Luv} {
		t.Run(space.String(), func(t *testing.T) {
			g := Gradient{Low: Color{20, 40, 200}, High: Color{250, 220, 10}, Space: space}
			if got := g.At(0); !near(got, g.Low, 1) {
				t.Errorf("at 0: got %s, want %s", got, g.Low)
			}
			if got := g.At(1); !near(got, g.High, 1) {
				t.Errorf("at 1: got %s, want %s", got, g.High)
			}
		})
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint32
		escaped    bool
		want       float32
	}{
		{"immediate escape", 0, true, 1},
		{"halfway", 5000, true, 0.5},
		{"member", 0, false, 0},
		{"member ignores iterations", 1234, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scalar(tt.iterations, tt.escaped, 10000); got != tt.want {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestParseBlendSpace(t *testing.T) {
	for _, space := range []BlendSpace{RGB, Lab, HCL, Luv} {
		parsed, err := ParseBlendSpace(space.String())
		if err != nil || parsed != space {
			t.Errorf("ParseBlendSpace(%q): got %v, %v", space.String(), parsed, err)
		}
	}
	if _, err := ParseBlendSpace("cmyk"); err == nil {
		t.Error("ParseBlendSpace should reject unknown spaces")
	}
}

func near(a, b Color, tolerance int) bool {
	diff := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return diff(a.R, b.R) <= tolerance && diff(a.G, b.G) <= tolerance && diff(a.B, b.B) <= tolerance
}
