package mandelbrot

// escapeRadiusSqr is the squared escape radius. Comparing squared magnitudes avoids a square root.
const escapeRadiusSqr = 4.0

// EscapeTime iterates z = z² + c starting from zero, at most limit times.
//
// If the orbit leaves the circle of radius two it returns the 0-based iteration at which that
// happened and true. If the limit is reached first it returns false: c is presumed to be a member
// of the set, although that has not been proven.
func EscapeTime(c Point, limit uint32) (uint32, bool) {
	z := Point{}
	for i := uint32(0); i < limit; i++ {
		z = z.Mul(z).Add(c)
		if z.NormSqr() > escapeRadiusSqr {
			return i, true
		}
	}
	return 0, false
}
