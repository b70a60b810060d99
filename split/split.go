package split

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/array"
)

// Split partitions seq at cuts. Partitions are sub-slices of seq; the input is
// never modified or copied. It returns Count()+1 partitions.
func Split[T any](seq []T, cuts Cuts) ([][]T, error) {
	b, err := cuts.Boundaries(len(seq))
	if err != nil {
		return nil, err
	}

	parts := make([][]T, len(b)-1)
	for i := range parts {
		parts[i] = seq[b[i]:b[i+1]:b[i+1]]
	}
	return parts, nil
}

// SplitAll applies the same cuts to every sequence. A Half cut is resolved
// per sequence. The first failing sequence aborts with its index attached.
func SplitAll[T any](seqs [][]T, cuts Cuts) ([][][]T, error) {
	out := make([][][]T, len(seqs))
	for i, s := range seqs {
		parts, err := Split(s, cuts)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		out[i] = parts
	}
	return out, nil
}

// SplitArray partitions a along its leading (sample) axis. Partitions are
// views of a.
func SplitArray(a *array.Array, cuts Cuts) ([]*array.Array, error) {
	b, err := cuts.Boundaries(a.Len())
	if err != nil {
		return nil, err
	}

	parts := make([]*array.Array, len(b)-1)
	for i := range parts {
		parts[i] = a.Slice(b[i], b[i+1])
	}
	return parts, nil
}
