// Package stats computes descriptive statistics over flat samples and over
// the feature columns of an [array.Array].
package stats

import (
	"math"
	"slices"
)

// Summary holds descriptive statistics of a sequence of values.
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	Std      float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	MaxAbs   float64 // max(|min|, |max|)
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for numerical stability on higher-order moments.
func Calculate(x []float64) Summary {
	acc := accumulator{}
	for _, v := range x {
		acc.add(v)
	}
	return acc.summary()
}

// Mean returns the arithmetic mean of x using Kahan summation.
// Returns 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of x using Welford's online algorithm.
func Moments(x []float64) (mean, variance, skewness, kurtosis float64) {
	s := Calculate(x)
	return s.Mean, s.Variance, s.Skewness, s.Kurtosis
}

// MeanStd returns the mean and population standard deviation of x.
func MeanStd(x []float64) (mean, std float64) {
	s := Calculate(x)
	return s.Mean, s.Std
}

// MinMax returns the smallest and largest value of x, or (0, 0) when empty.
func MinMax(x []float64) (minVal, maxVal float64) {
	if len(x) == 0 {
		return 0, 0
	}
	minVal, maxVal = x[0], x[0]
	for _, v := range x[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// Median returns the median of x without modifying it. For even lengths it
// is the mean of the two middle values. Returns NaN for an empty slice.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// accumulator carries the Welford state for one stream of values.
type accumulator struct {
	n       int
	mean    float64
	m2      float64
	m3      float64
	m4      float64
	maxVal  float64
	maxPos  int
	minVal  float64
	minPos  int
	hasData bool
}

func (a *accumulator) add(x float64) {
	a.n++
	ni := float64(a.n)

	delta := x - a.mean
	deltaN := delta / ni
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * float64(a.n-1)

	// M4 must be updated before M3, and M3 before M2.
	a.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
	a.m3 += term1*deltaN*(float64(a.n-1)-1) - 3*deltaN*a.m2
	a.m2 += term1
	a.mean += deltaN

	if !a.hasData {
		a.maxVal, a.minVal = x, x
		a.maxPos, a.minPos = a.n-1, a.n-1
		a.hasData = true
		return
	}
	if x > a.maxVal {
		a.maxVal = x
		a.maxPos = a.n - 1
	}
	if x < a.minVal {
		a.minVal = x
		a.minPos = a.n - 1
	}
}

func (a *accumulator) summary() Summary {
	if a.n == 0 {
		return Summary{}
	}

	nf := float64(a.n)
	variance := a.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (a.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (a.m4/nf)/(variance*variance) - 3
	}

	return Summary{
		Length:   a.n,
		Mean:     a.mean,
		Variance: variance,
		Std:      math.Sqrt(variance),
		Min:      a.minVal,
		MinPos:   a.minPos,
		Max:      a.maxVal,
		MaxPos:   a.maxPos,
		MaxAbs:   math.Max(math.Abs(a.maxVal), math.Abs(a.minVal)),
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}
