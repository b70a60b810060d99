// Package label builds integer class-label vectors aligned with split data
// and expands them to one-hot matrices.
package label

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/split"
)

// DefaultSamplesPerClass is the label vector length used when no
// [WithSamplesPerClass] option is given.
const DefaultSamplesPerClass = 100

var (
	// ErrClassRange reports a label outside [0, classCount).
	ErrClassRange = errors.New("label: class out of range")
	// ErrClassCount reports a non-positive class count.
	ErrClassCount = errors.New("label: class count must be > 0")
)

type config struct {
	samplesPerClass int
}

// Option configures [Build].
type Option func(*config)

// WithSamplesPerClass sets the length of each class's label vector. It must
// equal the number of samples of that class in the data being split.
// Non-positive values are ignored.
func WithSamplesPerClass(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.samplesPerClass = n
		}
	}
}

// Build returns, for each class c in [0, classCount), the partitions of a
// label vector of length samplesPerClass filled with c, split at cuts. The
// partition boundaries are the same the data splitter produces for a class
// of that length.
func Build(classCount int, cuts split.Cuts, opts ...Option) ([][][]int, error) {
	if classCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrClassCount, classCount)
	}

	cfg := config{samplesPerClass: DefaultSamplesPerClass}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([][][]int, classCount)
	for c := range out {
		parts, err := BuildClass(c, cuts, cfg.samplesPerClass)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", c, err)
		}
		out[c] = parts
	}
	return out, nil
}

// BuildClass splits a vector of n copies of class at cuts.
func BuildClass(class int, cuts split.Cuts, n int) ([][]int, error) {
	if class < 0 {
		return nil, fmt.Errorf("%w: %d", ErrClassRange, class)
	}
	return split.Split(core.Fill(class, n), cuts)
}

// ToCategorical expands labels to a (len(labels), classCount) one-hot array.
// Every label must lie in [0, classCount).
func ToCategorical(labels []int, classCount int) (*array.Array, error) {
	if classCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrClassCount, classCount)
	}

	data := make([]float64, len(labels)*classCount)
	for i, l := range labels {
		if l < 0 || l >= classCount {
			return nil, fmt.Errorf("%w: label %d at %d, class count %d", ErrClassRange, l, i, classCount)
		}
		data[i*classCount+l] = 1
	}
	return array.New([]int{len(labels), classCount}, data)
}

// FromCategorical returns the index of the largest entry of each row.
func FromCategorical(onehot *array.Array) []int {
	out := make([]int, onehot.Len())
	for i := range out {
		row := onehot.Row(i)
		best := 0
		for j, v := range row {
			if v > row[best] {
				best = j
			}
		}
		out[i] = best
	}
	return out
}
