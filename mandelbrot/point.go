package mandelbrot

import "fmt"

// Point is a point on the complex plane.
type Point struct {
	Re float64
	Im float64
}

func (p Point) Add(q Point) Point {
	return Point{Re: p.Re + q.Re, Im: p.Im + q.Im}
}

func (p Point) Mul(q Point) Point {
	return Point{
		Re: p.Re*q.Re - p.Im*q.Im,
		Im: p.Re*q.Im + p.Im*q.Re,
	}
}

// NormSqr returns re²+im², the squared magnitude of p.
func (p Point) NormSqr() float64 {
	return p.Re*p.Re + p.Im*p.Im
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Re, p.Im)
}
