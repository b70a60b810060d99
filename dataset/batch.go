package dataset

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-dataset/array"
)

// Batches splits p into batches of at most size rows. When rng is non-nil
// the rows are shuffled first, keeping data and labels aligned. The last
// batch may be shorter.
func (p Pair) Batches(size int, rng *rand.Rand) ([]Pair, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBatchSize, size)
	}

	n := p.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	dataWidth := rowWidth(p.Data)
	labelWidth := rowWidth(p.Labels)

	var out []Pair
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		rows := order[start:end]

		b := Pair{
			Data:    takeRows(p.Data, rows, dataWidth),
			Labels:  takeRows(p.Labels, rows, labelWidth),
			Classes: make([]int, len(rows)),
		}
		for k, r := range rows {
			b.Classes[k] = p.Classes[r]
		}
		out = append(out, b)
	}
	return out, nil
}

func rowWidth(f array.Float32) int {
	if f.Len() == 0 {
		return 0
	}
	return len(f.Data) / f.Len()
}

func takeRows(f array.Float32, rows []int, width int) array.Float32 {
	shape := append([]int{len(rows)}, f.Shape[1:]...)
	data := make([]float32, 0, len(rows)*width)
	for _, r := range rows {
		data = append(data, f.Data[r*width:(r+1)*width]...)
	}
	return array.Float32{Shape: shape, Data: data}
}
