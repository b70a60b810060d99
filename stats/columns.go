package stats

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/array"
)

// ColumnStats accumulates per-feature statistics one sample row at a time.
// Each feature has its own Welford accumulator, so results are identical to
// running [Calculate] over each column.
type ColumnStats struct {
	cols []accumulator
}

// NewColumnStats creates an accumulator for rows of the given width.
func NewColumnStats(features int) *ColumnStats {
	return &ColumnStats{cols: make([]accumulator, features)}
}

// Update adds one sample row. The row must have exactly Features() values.
func (c *ColumnStats) Update(row []float64) error {
	if len(row) != len(c.cols) {
		return fmt.Errorf("stats: row has %d values, want %d", len(row), len(c.cols))
	}
	for j, v := range row {
		c.cols[j].add(v)
	}
	return nil
}

// Features returns the row width.
func (c *ColumnStats) Features() int { return len(c.cols) }

// Result returns one Summary per feature.
func (c *ColumnStats) Result() []Summary {
	out := make([]Summary, len(c.cols))
	for j := range c.cols {
		out[j] = c.cols[j].summary()
	}
	return out
}

// Columns returns per-feature statistics of a, treating every sample as a
// flattened row.
func Columns(a *array.Array) []Summary {
	cs := NewColumnStats(a.Features())
	for i := 0; i < a.Len(); i++ {
		// Row width always matches Features.
		_ = cs.Update(a.Row(i))
	}
	return cs.Result()
}

// Rows returns statistics of every sample over its flattened features.
func Rows(a *array.Array) []Summary {
	out := make([]Summary, a.Len())
	for i := range out {
		out[i] = Calculate(a.Row(i))
	}
	return out
}
