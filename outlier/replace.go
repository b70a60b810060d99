package outlier

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/stats"
)

type replaceKind int

const (
	replaceMean replaceKind = iota
	replaceMedian
	replaceValue
)

// Replacement chooses the value substituted for outliers by [Replace].
// The zero value is [ReplaceMean].
type Replacement struct {
	kind  replaceKind
	value float64
}

var (
	// ReplaceMean substitutes the mean of the data.
	ReplaceMean = Replacement{kind: replaceMean}
	// ReplaceMedian substitutes the median of the data.
	ReplaceMedian = Replacement{kind: replaceMedian}
)

// ReplaceValue substitutes the constant v.
func ReplaceValue(v float64) Replacement {
	return Replacement{kind: replaceValue, value: v}
}

// String implements fmt.Stringer.
func (r Replacement) String() string {
	switch r.kind {
	case replaceMedian:
		return "median"
	case replaceValue:
		return fmt.Sprint(r.value)
	default:
		return "mean"
	}
}

// resolve returns the substitute for data. Statistics come from the data
// before any replacement.
func (r Replacement) resolve(data []float64) float64 {
	switch r.kind {
	case replaceMedian:
		return stats.Median(data)
	case replaceValue:
		return r.value
	default:
		return stats.Mean(data)
	}
}

// Replace returns a copy of data in which every value above threshold is
// replaced according to r.
func Replace(data []float64, threshold float64, r Replacement) []float64 {
	out := core.Clone(data)
	if len(out) == 0 {
		return out
	}
	sub := r.resolve(data)
	for i, v := range out {
		if v > threshold {
			out[i] = sub
		}
	}
	return out
}
