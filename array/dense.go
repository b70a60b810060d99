package array

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Dense returns a (Len, Features) matrix view sharing the array data.
// It panics, like [mat.NewDense], when either dimension is zero.
func (a *Array) Dense() *mat.Dense {
	return mat.NewDense(a.Len(), a.Features(), a.data)
}

// FromDense copies m into a new array. sampleShape, when given, replaces the
// column dimension and must multiply to the column count.
func FromDense(m mat.Matrix, sampleShape ...int) (*Array, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	shape := []int{r, c}
	if len(sampleShape) > 0 {
		shape = append([]int{r}, slices.Clone(sampleShape)...)
	}
	return New(shape, data)
}
