package dataset

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/label"
	"github.com/cwbudde/algo-dataset/normalize"
	"github.com/cwbudde/algo-dataset/spectrum"
	"github.com/cwbudde/algo-dataset/split"
)

// Pair is one assembled partition. Data and Labels have the same leading
// dimension; Labels is one-hot with one column per class and Classes holds
// the integer class of every row.
type Pair struct {
	Data    array.Float32
	Labels  array.Float32
	Classes []int
}

// Len returns the number of samples in the partition.
func (p Pair) Len() int { return len(p.Classes) }

// Assemble splits every class at cuts, concatenates equal partitions across
// classes in class order and returns one normalized Pair per partition.
// A Half cut is resolved once from the length of class 0. classCount is the
// one-hot width and must be at least len(classes).
func Assemble(classes []*array.Array, cuts split.Cuts, classCount int, opts ...Option) ([]Pair, error) {
	cfg := ApplyOptions(opts...)
	log := cfg.Logger

	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	if classCount < len(classes) {
		return nil, fmt.Errorf("%w: %d < %d", ErrClassCount, classCount, len(classes))
	}

	points, err := cuts.Resolve(classes[0].Len())
	if err != nil {
		return nil, &ClassError{Class: 0, Err: err}
	}
	resolved := split.Points(points...)
	log.Debug("resolved cut points",
		zap.Stringer("cuts", cuts),
		zap.Ints("points", points),
		zap.Int("classes", len(classes)))

	sampleShape := classes[0].SampleShape()
	for c, a := range classes {
		if !slices.Equal(a.SampleShape(), sampleShape) {
			return nil, &ClassError{Class: c, Err: fmt.Errorf("sample shape %v, want %v", a.SampleShape(), sampleShape)}
		}
		if cfg.SamplesPerClass > 0 && a.Len() != cfg.SamplesPerClass {
			return nil, &LengthMismatchError{Class: c, Partition: -1, Data: a.Len(), Labels: cfg.SamplesPerClass}
		}
	}

	dataParts, err := splitClasses(classes, resolved, cfg.Workers)
	if err != nil {
		return nil, err
	}

	labelParts := make([][][]int, len(classes))
	for c, a := range classes {
		n := a.Len()
		if cfg.SamplesPerClass > 0 {
			n = cfg.SamplesPerClass
		}
		parts, err := label.BuildClass(c, resolved, n)
		if err != nil {
			return nil, &ClassError{Class: c, Err: err}
		}
		for p := range parts {
			if len(parts[p]) != dataParts[c][p].Len() {
				return nil, &LengthMismatchError{Class: c, Partition: p, Data: dataParts[c][p].Len(), Labels: len(parts[p])}
			}
		}
		labelParts[c] = parts
	}

	count := resolved.Count() + 1
	pairs := make([]Pair, count)
	for p := range pairs {
		pair, err := assemblePartition(p, dataParts, labelParts, classCount, cfg)
		if err != nil {
			return nil, fmt.Errorf("dataset: partition %d: %w", p, err)
		}
		log.Debug("assembled partition",
			zap.Int("partition", p),
			zap.Int("samples", pair.Len()),
			zap.Ints("shape", pair.Data.Shape))
		pairs[p] = pair
	}

	return pairs, nil
}

func assemblePartition(p int, dataParts [][]*array.Array, labelParts [][][]int, classCount int, cfg Config) (Pair, error) {
	blocks := make([]*array.Array, len(dataParts))
	var classes []int
	for c := range dataParts {
		blocks[c] = dataParts[c][p]
		classes = append(classes, labelParts[c][p]...)
	}

	data, err := array.Concat(blocks...)
	if err != nil {
		return Pair{}, err
	}

	if cfg.Spectrum {
		data, err = spectrum.Features(data, cfg.SpectrumOptions...)
		if err != nil {
			return Pair{}, err
		}
	}

	data, err = normalize.Apply(data, cfg.Policy)
	if err != nil {
		return Pair{}, err
	}

	if cfg.FeatureShape != nil {
		sample, err := array.ResolveShape(cfg.FeatureShape, data.Features())
		if err != nil {
			return Pair{}, err
		}
		data, err = data.Reshape(append([]int{data.Len()}, sample...)...)
		if err != nil {
			return Pair{}, err
		}
	}

	if data.Len() != len(classes) {
		return Pair{}, &LengthMismatchError{Class: -1, Partition: p, Data: data.Len(), Labels: len(classes)}
	}

	onehot, err := label.ToCategorical(classes, classCount)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Data: data.Float32(), Labels: onehot.Float32(), Classes: classes}, nil
}

// splitClasses splits every class at cuts. With more than one worker the
// classes are divided into contiguous chunks; each goroutine writes only the
// slots of its own classes.
func splitClasses(classes []*array.Array, cuts split.Cuts, workers int) ([][]*array.Array, error) {
	parts := make([][]*array.Array, len(classes))
	errs := make([]error, len(classes))

	splitOne := func(c int) {
		parts[c], errs[c] = split.SplitArray(classes[c], cuts)
	}

	if workers <= 1 || len(classes) == 1 {
		for c := range classes {
			splitOne(c)
		}
	} else {
		workers = min(workers, len(classes))
		chunk := (len(classes) + workers - 1) / workers

		var wg sync.WaitGroup
		for start := 0; start < len(classes); start += chunk {
			end := min(start+chunk, len(classes))
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for c := start; c < end; c++ {
					splitOne(c)
				}
			}(start, end)
		}
		wg.Wait()
	}

	for c, err := range errs {
		if err != nil {
			return nil, &ClassError{Class: c, Err: err}
		}
	}
	return parts, nil
}
