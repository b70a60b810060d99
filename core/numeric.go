package core

import "math"

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%2 == 0
}

// SafeScale returns 1/d, or 1 when d is zero or not finite.
// Scalers use it so that constant features pass through unscaled.
func SafeScale(d float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 1
	}

	return 1 / d
}

// Product returns the product of dims. An empty slice yields 1.
func Product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}
