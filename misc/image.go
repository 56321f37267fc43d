package misc

import "math"

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// LerpGeometric interpolates between two positive values along a geometric path, so equal steps
// in fraction scale the value by equal factors.
func LerpGeometric(v1 float64, v2 float64, fraction float64) float64 {
	return v1 * math.Pow(v2/v1, fraction)
}

func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
