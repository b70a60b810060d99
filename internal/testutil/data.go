package testutil

import "math/rand"

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns start, start+1, ..., start+length-1.
func Ramp(start float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// ClassRows generates samples×features values for one synthetic class:
// noise with the given seed, shifted by 10*class so classes stay separable.
func ClassRows(seed int64, class, samples, features int) []float64 {
	out := DeterministicNoise(seed+int64(class), 1, samples*features)
	shift := 10 * float64(class)
	for i := range out {
		out[i] += shift
	}
	return out
}
