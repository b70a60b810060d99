package split

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a cut point outside [0, length].
	ErrOutOfRange = errors.New("split: cut point out of range")
	// ErrUnordered reports cut points that decrease.
	ErrUnordered = errors.New("split: cut points not in increasing order")
	// ErrAxis reports an axis beyond the dimensionality of the data.
	ErrAxis = errors.New("split: invalid axis")
	// ErrEmpty reports a zero-length axis where a midpoint was requested.
	ErrEmpty = errors.New("split: input data is empty")
	// ErrFraction reports an unusable partition fraction.
	ErrFraction = errors.New("split: invalid fraction")
)

// BoundaryError describes an invalid cut point. It wraps one of
// ErrOutOfRange or ErrUnordered.
type BoundaryError struct {
	Position int // index of the offending cut point in the supplied list
	Value    int
	Length   int
	Err      error
}

func (e *BoundaryError) Error() string {
	if errors.Is(e.Err, ErrUnordered) {
		return fmt.Sprintf("%v: cut %d (#%d) is below the previous cut", e.Err, e.Value, e.Position)
	}
	return fmt.Sprintf("%v: cut %d (#%d) not in [0, %d]", e.Err, e.Value, e.Position, e.Length)
}

func (e *BoundaryError) Unwrap() error { return e.Err }
