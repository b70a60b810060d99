package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoClasses reports an empty class list.
	ErrNoClasses = errors.New("dataset: no classes")
	// ErrClassCount reports a one-hot width smaller than the number of classes.
	ErrClassCount = errors.New("dataset: class count smaller than number of classes")
	// ErrClassIndex reports a class index outside the loaded set.
	ErrClassIndex = errors.New("dataset: class index out of range")
	// ErrBatchSize reports a non-positive batch size.
	ErrBatchSize = errors.New("dataset: batch size must be > 0")
)

// ClassError attaches the index of the failing class to an error.
type ClassError struct {
	Class int
	Err   error
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("dataset: class %d: %v", e.Class, e.Err)
}

func (e *ClassError) Unwrap() error { return e.Err }

// LengthMismatchError reports labels that do not line up with their data.
// Partition is -1 when the whole class has the wrong number of samples.
// Class is -1 when an assembled partition no longer matches its labels;
// the partition index is then reported by the wrapping error.
type LengthMismatchError struct {
	Class     int
	Partition int
	Data      int
	Labels    int
}

func (e *LengthMismatchError) Error() string {
	if e.Class < 0 {
		return fmt.Sprintf("dataset: %d data rows, %d labels", e.Data, e.Labels)
	}
	if e.Partition < 0 {
		return fmt.Sprintf("dataset: class %d has %d samples, labels expect %d", e.Class, e.Data, e.Labels)
	}
	return fmt.Sprintf("dataset: class %d partition %d: %d data rows, %d labels", e.Class, e.Partition, e.Data, e.Labels)
}
