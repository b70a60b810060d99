package normalize

import (
	"fmt"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/core"
	"github.com/cwbudde/algo-dataset/stats"
)

// ZScoreFeatures centres every feature (column of the flattened samples) on
// zero and scales it to unit population variance.
func ZScoreFeatures(data *array.Array) *array.Array {
	out := data.Clone()
	if data.Len() == 0 {
		return out
	}

	cols := stats.Columns(data)
	f := data.Features()
	buf := out.Data()
	for j, s := range cols {
		scale := core.SafeScale(s.Std)
		for i := j; i < len(buf); i += f {
			buf[i] = (buf[i] - s.Mean) * scale
		}
	}
	return out
}

// ZScoreSamples centres every sample on zero and scales it to unit
// population variance over its flattened features.
func ZScoreSamples(data *array.Array) *array.Array {
	out := data.Clone()
	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)
		mean, std := stats.MeanStd(row)
		scale := core.SafeScale(std)
		for k := range row {
			row[k] = (row[k] - mean) * scale
		}
	}
	return out
}

// ZScore2D standardizes each sample of an (N, H, W, ...) array over its
// flattened features and returns it with a trailing unit channel axis,
// e.g. (N, H, W) -> (N, H, W, 1).
func ZScore2D(data *array.Array) (*array.Array, error) {
	if data.Rank() < 2 {
		return nil, fmt.Errorf("%w: z_score_2d needs rank >= 2, got shape %v", ErrRank, data.Shape())
	}
	return ZScoreSamples(data).AppendAxis(), nil
}
