package core

// Fill returns a new slice of length n with every element set to value.
func Fill[T any](value T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Clone returns a copy of src. A nil input yields an empty, non-nil slice.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
