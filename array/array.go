package array

import (
	"slices"

	"github.com/cwbudde/algo-dataset/core"
)

// Array is a dense row-major float64 array. Rank is at least one.
type Array struct {
	shape []int
	data  []float64
}

// New wraps data with the given shape. The array takes ownership of data.
// len(data) must equal the product of shape and every dimension must be >= 0.
func New(shape []int, data []float64) (*Array, error) {
	if len(shape) == 0 {
		return nil, shapeError("rank must be >= 1")
	}
	for _, d := range shape {
		if d < 0 {
			return nil, shapeError("negative dimension in %v", shape)
		}
	}
	if n := core.Product(shape); n != len(data) {
		return nil, shapeError("shape %v needs %d values, got %d", shape, n, len(data))
	}
	if data == nil {
		data = []float64{}
	}

	return &Array{shape: slices.Clone(shape), data: data}, nil
}

// MustNew is like [New] but panics on error. Intended for literals in tests
// and examples.
func MustNew(shape []int, data []float64) *Array {
	a, err := New(shape, data)
	if err != nil {
		panic(err)
	}
	return a
}

// Zeros returns a zero-filled array.
func Zeros(shape ...int) *Array {
	return Full(0, shape...)
}

// Full returns an array of the given shape with every element set to value.
// Without dimensions it returns a one-element vector.
func Full(value float64, shape ...int) *Array {
	if len(shape) == 0 {
		shape = []int{1}
	}
	n := core.Product(shape)
	if n < 0 {
		n = 0
	}
	return &Array{shape: slices.Clone(shape), data: core.Fill(value, n)}
}

// FromValues returns a rank-1 array holding a copy of values.
func FromValues(values []float64) *Array {
	return &Array{shape: []int{len(values)}, data: core.Clone(values)}
}

// FromRows stacks equally long rows into a (len(rows), len(rows[0])) array.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return &Array{shape: []int{0, 0}, data: []float64{}}, nil
	}

	width := len(rows[0])
	data := make([]float64, 0, len(rows)*width)
	for i, r := range rows {
		if len(r) != width {
			return nil, shapeError("row %d has %d values, want %d", i, len(r), width)
		}
		data = append(data, r...)
	}

	return &Array{shape: []int{len(rows), width}, data: data}, nil
}

// Shape returns a copy of the array shape.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the size of the leading (sample) dimension.
func (a *Array) Len() int { return a.shape[0] }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Features returns the number of values per sample (product of the trailing dimensions).
func (a *Array) Features() int { return core.Product(a.shape[1:]) }

// SampleShape returns a copy of the trailing dimensions.
func (a *Array) SampleShape() []int { return slices.Clone(a.shape[1:]) }

// Data returns the backing slice in row-major order.
func (a *Array) Data() []float64 { return a.data }

// Row returns the flattened values of sample i as a view.
func (a *Array) Row(i int) []float64 {
	f := a.Features()
	return a.data[i*f : (i+1)*f : (i+1)*f]
}

// At returns the element at the given multi-index.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(shapeError("index rank %d, array rank %d", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(shapeError("index %d out of range for axis %d of size %d", i, d, a.shape[d]))
		}
		off = off*a.shape[d] + i
	}
	return a.data[off]
}

// Slice returns samples [lo, hi) as a view. It panics like a Go slice
// expression when the bounds are invalid.
func (a *Array) Slice(lo, hi int) *Array {
	f := a.Features()
	shape := slices.Clone(a.shape)
	shape[0] = hi - lo
	return &Array{shape: shape, data: a.data[lo*f : hi*f : hi*f]}
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: slices.Clone(a.shape), data: core.Clone(a.data)}
}

// Map returns a new array with f applied to every element.
func (a *Array) Map(f func(float64) float64) *Array {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}
	return &Array{shape: slices.Clone(a.shape), data: out}
}

// Rows returns every sample as a view, in order.
func (a *Array) Rows() [][]float64 {
	rows := make([][]float64, a.Len())
	for i := range rows {
		rows[i] = a.Row(i)
	}
	return rows
}
