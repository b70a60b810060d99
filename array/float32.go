package array

import "slices"

// Float32 is the single-precision export form handed to training frameworks.
type Float32 struct {
	Shape []int
	Data  []float32
}

// Len returns the leading dimension, or 0 for an empty shape.
func (f Float32) Len() int {
	if len(f.Shape) == 0 {
		return 0
	}
	return f.Shape[0]
}

// Float32 converts the array to single precision.
func (a *Array) Float32() Float32 {
	out := make([]float32, len(a.data))
	for i, v := range a.data {
		out[i] = float32(v)
	}
	return Float32{Shape: slices.Clone(a.shape), Data: out}
}

// FromFloat32 converts single-precision data back to an Array.
func FromFloat32(f Float32) (*Array, error) {
	data := make([]float64, len(f.Data))
	for i, v := range f.Data {
		data[i] = float64(v)
	}
	return New(f.Shape, data)
}
