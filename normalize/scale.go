package normalize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/stats"
)

// Norm selects the per-sample norm used by [UnitNorm].
type Norm int

// Supported norms.
const (
	L1 Norm = iota
	L2
	Max
)

// String returns the norm name.
func (n Norm) String() string {
	switch n {
	case L1:
		return "l1"
	case L2:
		return "l2"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// Range01 maps the global minimum of data to 0 and the global maximum to 1.
// Constant data maps to all zeros.
func Range01(data *array.Array) *array.Array {
	out := data.Clone()
	buf := out.Data()
	if len(buf) == 0 {
		return out
	}

	lo, hi := floats.Min(buf), floats.Max(buf)
	floats.AddConst(-lo, buf)
	if hi != lo {
		floats.Scale(1/(hi-lo), buf)
	} else {
		floats.Scale(0, buf)
	}
	return out
}

// MinMax rescales every feature independently so that its minimum maps to lo
// and its maximum to hi. Constant features map to lo.
func MinMax(data *array.Array, lo, hi float64) (*array.Array, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrRange, lo, hi)
	}

	out := data.Clone()
	if data.Len() == 0 {
		return out, nil
	}

	f := data.Features()
	buf := out.Data()
	for j, s := range stats.Columns(data) {
		scale := core.SafeScale(s.Max - s.Min)
		for i := j; i < len(buf); i += f {
			buf[i] = (buf[i]-s.Min)*scale*(hi-lo) + lo
		}
	}
	return out, nil
}

// MaxAbsScale divides every feature by its largest absolute value, mapping
// it into [-1, 1]. All-zero features are left unchanged.
func MaxAbsScale(data *array.Array) *array.Array {
	out := data.Clone()
	if data.Len() == 0 {
		return out
	}

	f := data.Features()
	buf := out.Data()
	for j, s := range stats.Columns(data) {
		scale := core.SafeScale(s.MaxAbs)
		for i := j; i < len(buf); i += f {
			buf[i] *= scale
		}
	}
	return out
}

// UnitNorm scales each sample to unit norm. Samples with zero norm are left
// unchanged.
func UnitNorm(data *array.Array, n Norm) *array.Array {
	out := data.Clone()

	var l float64
	switch n {
	case L1:
		l = 1
	case Max:
		l = math.Inf(1)
	default:
		l = 2
	}

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		if len(row) == 0 {
			continue
		}
		if norm := floats.Norm(row, l); norm != 0 {
			floats.Scale(1/norm, row)
		}
	}
	return out
}
