package array

import (
	"slices"

	"github.com/cwbudde/algo-dataset/core"
)

// Reshape returns a view with a new shape. At most one dimension may be -1;
// it is inferred from the element count.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	resolved, err := ResolveShape(shape, len(a.data))
	if err != nil {
		return nil, err
	}
	return &Array{shape: resolved, data: a.data}, nil
}

// ResolveShape replaces a single -1 in shape so that its product equals size.
func ResolveShape(shape []int, size int) ([]int, error) {
	if len(shape) == 0 {
		return nil, shapeError("rank must be >= 1")
	}

	out := slices.Clone(shape)
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, shapeError("more than one -1 in %v", shape)
			}
			infer = i
		case d < 0:
			return nil, shapeError("negative dimension in %v", shape)
		default:
			known *= d
		}
	}

	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, shapeError("cannot infer -1 in %v for %d values", shape, size)
		}
		out[infer] = size / known
	}

	if core.Product(out) != size {
		return nil, shapeError("cannot reshape %d values into %v", size, shape)
	}

	return out, nil
}

// AppendAxis returns a view with a trailing unit dimension, e.g. (N, H, W) -> (N, H, W, 1).
func (a *Array) AppendAxis() *Array {
	shape := append(slices.Clone(a.shape), 1)
	return &Array{shape: shape, data: a.data}
}

// Flatten returns a (Len, Features) view.
func (a *Array) Flatten() *Array {
	return &Array{shape: []int{a.Len(), a.Features()}, data: a.data}
}

// Concat joins arrays along the leading axis. All trailing dimensions must match.
func Concat(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, ErrEmpty
	}

	trailing := arrays[0].shape[1:]
	total := 0
	size := 0
	for i, a := range arrays {
		if !slices.Equal(a.shape[1:], trailing) {
			return nil, shapeError("array %d has sample shape %v, want %v", i, a.shape[1:], trailing)
		}
		total += a.shape[0]
		size += len(a.data)
	}

	data := make([]float64, 0, size)
	for _, a := range arrays {
		data = append(data, a.data...)
	}

	shape := append([]int{total}, trailing...)
	return &Array{shape: shape, data: data}, nil
}
