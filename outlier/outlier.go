package outlier

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/stats"
)

// ErrMethod reports an unrecognized detection method.
var ErrMethod = errors.New("outlier: unknown method")

// Method selects how values are compared with the threshold.
type Method int

const (
	// Threshold compares raw values with the threshold.
	Threshold Method = iota
	// ZScore compares |x-mean|/std with the threshold.
	ZScore
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Threshold:
		return "threshold"
	case ZScore:
		return "z_score"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "threshold" or "z_score" to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "threshold":
		return Threshold, nil
	case "z_score":
		return ZScore, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMethod, name)
	}
}

// ZScores returns |x-mean|/std for every value, using the mean and population
// standard deviation of the whole slice. Constant data scores zero.
func ZScores(data []float64) []float64 {
	out := core.Clone(data)
	if len(out) == 0 {
		return out
	}
	mean, std := stats.MeanStd(data)
	floats.AddConst(-mean, out)
	floats.Scale(core.SafeScale(std), out)
	for i, v := range out {
		out[i] = math.Abs(v)
	}
	return out
}

// Detect returns the outlying values of data in order. With Threshold a
// value is an outlier when it exceeds threshold; with ZScore when its
// z-score is at least threshold.
func Detect(data []float64, threshold float64, m Method) ([]float64, error) {
	return filter(data, m, func(v, z float64) bool {
		if m == ZScore {
			return z >= threshold
		}
		return v > threshold
	})
}

// Remove returns the values of data that are not outliers, in order. With
// Threshold it keeps values below threshold; with ZScore values whose
// z-score is at most threshold.
func Remove(data []float64, threshold float64, m Method) ([]float64, error) {
	return filter(data, m, func(v, z float64) bool {
		if m == ZScore {
			return z <= threshold
		}
		return v < threshold
	})
}

func filter(data []float64, m Method, keep func(v, z float64) bool) ([]float64, error) {
	var z []float64
	switch m {
	case Threshold:
	case ZScore:
		z = ZScores(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrMethod, m)
	}

	out := make([]float64, 0, len(data))
	for i, v := range data {
		var zi float64
		if z != nil {
			zi = z[i]
		}
		if keep(v, zi) {
			out = append(out, v)
		}
	}
	return out, nil
}
