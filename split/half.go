package split

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/core"
)

// HalfIndex returns the midpoint cut along axis of a value with the given shape.
//
// Even lengths return length/2. Odd lengths return (length+1)/2, so the first
// half is one element longer: HalfIndex([]int{11}, 0) == 6.
func HalfIndex(shape []int, axis int) (int, error) {
	if axis < 0 || axis >= len(shape) {
		return 0, fmt.Errorf("%w: axis %d for %dD data", ErrAxis, axis, len(shape))
	}

	n := shape[axis]
	if n == 0 {
		return 0, ErrEmpty
	}

	if core.IsEven(n) {
		return n / 2, nil
	}
	return (n + 1) / 2, nil
}
