package mandelbrot

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{Re: 1, Im: 2}
	q := Point{Re: 3, Im: 4}

	if got, want := p.Add(q), (Point{Re: 4, Im: 6}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := p.Mul(q), (Point{Re: -5, Im: 10}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got := q.NormSqr(); got != 25 {
		t.Errorf("NormSqr: got %g, want 25", got)
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name        string
		c           Point
		wantIter    uint32
		wantEscaped bool
	}{
		{"outside radius escapes immediately", Point{Re: 2.1, Im: 0}, 0, true},
		{"far outside", Point{Re: -3, Im: 3}, 0, true},
		{"on the real boundary", Point{Re: 2, Im: 0}, 1, true},
		{"on the imaginary boundary", Point{Re: 0, Im: 2}, 1, true},
		{"origin is a member", Point{}, 0, false},
		{"period two cycle", Point{Re: -1, Im: 0}, 0, false},
		{"cusp", Point{Re: 0.25, Im: 0}, 0, false},
		{"just right of the cusp", Point{Re: 0.5, Im: 0}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter, escaped := EscapeTime(tt.c, 1000)
			if escaped != tt.wantEscaped {
				t.Fatalf("escaped: got %t, want %t", escaped, tt.wantEscaped)
			}
			if escaped && iter != tt.wantIter {
				t.Errorf("iterations: got %d, want %d", iter, tt.wantIter)
			}
		})
	}
}

func TestEscapeTime_ZeroLimit(t *testing.T) {
	if _, escaped := EscapeTime(Point{Re: 10, Im: 10}, 0); escaped {
		t.Error("nothing can escape without iterating")
	}
}

func TestEscapeTime_MonotonicInLimit(t *testing.T) {
	points := []Point{
		{Re: 0.3, Im: 0.5},
		{Re: -0.75, Im: 0.1},
		{Re: -1.25, Im: 0.02},
		{Re: 0.26, Im: 0},
		{Re: -0.1, Im: 0.65},
		{Re: 0, Im: 0},
	}
	limits := []uint32{1, 2, 5, 10, 50, 100, 1000, 5000}

	for _, c := range points {
		var escapedAt uint32
		seen := false
		for _, limit := range limits {
			iter, escaped := EscapeTime(c, limit)
			if seen && !escaped {
				t.Errorf("%v: escaped at %d with a lower limit but not with limit %d", c, escapedAt, limit)
			}
			if seen && escaped && iter != escapedAt {
				t.Errorf("%v: iteration count changed from %d to %d at limit %d", c, escapedAt, iter, limit)
			}
			if escaped && !seen {
				seen = true
				escapedAt = iter
			}
		}
	}
}
