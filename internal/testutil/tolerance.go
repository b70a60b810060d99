package testutil

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireShape fails t if got and want are not the same shape.
func RequireShape(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("shape = %v, want %v", got, want)
	}
}

// RequireMeanVar fails t if the population mean or variance of data
// is further than meanEps from mean or varEps from variance.
func RequireMeanVar(t *testing.T, data []float64, mean, variance, meanEps, varEps float64) {
	t.Helper()
	if len(data) == 0 {
		t.Fatal("empty data")
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	m := sum / float64(len(data))
	var ss float64
	for _, v := range data {
		ss += (v - m) * (v - m)
	}
	vr := ss / float64(len(data))
	if math.Abs(m-mean) > meanEps {
		t.Fatalf("mean = %v, want %v ± %v", m, mean, meanEps)
	}
	if math.Abs(vr-variance) > varEps {
		t.Fatalf("variance = %v, want %v ± %v", vr, variance, varEps)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
