package dataset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/dataio"
	"github.com/cwbudde/algo-dataset/split"
)

// Set is a loaded collection of classes. Class i holds the samples of
// class ID i.
type Set struct {
	classes []*array.Array
	paths   []string
}

// NewSet wraps in-memory class arrays.
func NewSet(classes ...*array.Array) (*Set, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	return &Set{classes: classes}, nil
}

// Load reads one class per path with loader, in order.
func Load(loader *dataio.Loader, paths []string, log *zap.Logger) (*Set, error) {
	if len(paths) == 0 {
		return nil, ErrNoClasses
	}
	if log == nil {
		log = zap.NewNop()
	}

	classes := make([]*array.Array, len(paths))
	for i, p := range paths {
		a, err := loader.LoadArray(p)
		if err != nil {
			return nil, &ClassError{Class: i, Err: err}
		}
		log.Debug("loaded class",
			zap.Int("class", i),
			zap.String("path", p),
			zap.Ints("shape", a.Shape()))
		classes[i] = a
	}

	return &Set{classes: classes, paths: append([]string(nil), paths...)}, nil
}

// Len returns the number of classes.
func (s *Set) Len() int { return len(s.classes) }

// Classes returns the class arrays in class order.
func (s *Set) Classes() []*array.Array {
	return append([]*array.Array(nil), s.classes...)
}

// Paths returns the source path of each class, or nil for an in-memory set.
func (s *Set) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Class returns the samples of class i.
func (s *Set) Class(i int) (*array.Array, error) {
	if i < 0 || i >= len(s.classes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrClassIndex, i, len(s.classes))
	}
	return s.classes[i], nil
}

// Example returns a copy of the first sample of class i with its sample
// shape. Scalar samples come back as one-element vectors.
func (s *Set) Example(i int) (*array.Array, error) {
	a, err := s.Class(i)
	if err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return nil, &ClassError{Class: i, Err: split.ErrEmpty}
	}
	shape := a.SampleShape()
	if len(shape) == 0 {
		shape = []int{1}
	}
	return array.New(shape, core.Clone(a.Row(0)))
}

// Stacked concatenates all classes along the sample axis. Classes of lower
// rank get trailing unit axes until every class has the highest rank.
func (s *Set) Stacked() (*array.Array, error) {
	rank := 0
	for _, a := range s.classes {
		rank = max(rank, a.Rank())
	}

	blocks := make([]*array.Array, len(s.classes))
	for i, a := range s.classes {
		for a.Rank() < rank {
			a = a.AppendAxis()
		}
		blocks[i] = a
	}
	return array.Concat(blocks...)
}

// Assemble runs [Assemble] over the set with one one-hot column per class.
func (s *Set) Assemble(cuts split.Cuts, opts ...Option) ([]Pair, error) {
	return Assemble(s.classes, cuts, s.Len(), opts...)
}
