package misc

import (
	"math"
	"testing"
)

func TestLerpFloat64(t *testing.T) {
	tests := []struct {
		v1, v2, fraction, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{10, 0, 0.25, 7.5},
		{-2, 2, 0.75, 1},
	}

	for _, tt := range tests {
		if got := LerpFloat64(tt.v1, tt.v2, tt.fraction); got != tt.want {
			t.Errorf("LerpFloat64(%g, %g, %g): got %g, want %g", tt.v1, tt.v2, tt.fraction, got, tt.want)
		}
	}
}

func TestLerpGeometric(t *testing.T) {
	if got := LerpGeometric(4, 1, 0); got != 4 {
		t.Errorf("fraction 0: got %g, want 4", got)
	}
	if got := LerpGeometric(4, 1, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("fraction 1: got %g, want 1", got)
	}
	if got := LerpGeometric(4, 1, 0.5); math.Abs(got-2) > 1e-12 {
		t.Errorf("fraction 0.5: got %g, want 2", got)
	}
}

func TestEasing(t *testing.T) {
	if EaseOutExpo(0) != 0 || EaseOutExpo(1) != 1 || EaseOutExpo(2) != 1 {
		t.Error("EaseOutExpo endpoints")
	}
	if EaseInExpo(0) != 0 || EaseInExpo(-1) != 0 || EaseInExpo(1) != 1 {
		t.Error("EaseInExpo endpoints")
	}

	previousOut, previousIn := 0.0, 0.0
	for i := 1; i <= 10; i++ {
		x := float64(i) / 10
		out, in := EaseOutExpo(x), EaseInExpo(x)
		if out < previousOut || in < previousIn {
			t.Errorf("easing not monotonic at %g", x)
		}
		if out < in {
			t.Errorf("ease out should lead ease in at %g: %g < %g", x, out, in)
		}
		previousOut, previousIn = out, in
	}
}
