package normalize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRank reports an array of unsuitable rank for the operation.
	ErrRank = errors.New("normalize: unsupported array rank")
	// ErrSingular reports a covariance matrix that cannot be whitened.
	ErrSingular = errors.New("normalize: covariance matrix is singular")
	// ErrTooFewSamples reports too few samples to estimate statistics.
	ErrTooFewSamples = errors.New("normalize: too few samples")
	// ErrRange reports an empty or inverted target range.
	ErrRange = errors.New("normalize: invalid target range")
)

// ConfigError reports an unrecognized normalization policy.
type ConfigError struct {
	Value string
	Valid []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("normalize: unknown policy %q (valid: %s)", e.Value, strings.Join(e.Valid, ", "))
}
