package array

import (
	"errors"
	"fmt"
)

var (
	// ErrShape reports a shape that does not match the data or the operation.
	ErrShape = errors.New("array: invalid shape")
	// ErrEmpty reports an operation that needs at least one array.
	ErrEmpty = errors.New("array: no arrays given")
)

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}
