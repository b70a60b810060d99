package normalize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-dataset/array"
)

// eigenFloor is the smallest covariance eigenvalue accepted by [Whiten].
const eigenFloor = 1e-12

// Whiten decorrelates the features of data and scales them to unit variance.
// It centres the samples, eigendecomposes the sample covariance matrix
// C = V·diag(λ)·Vᵀ and projects onto V·diag(λ)^(-1/2). The output has the
// same shape as the input. At least two samples are required and the
// covariance must be non-singular.
func Whiten(data *array.Array) (*array.Array, error) {
	n, f := data.Len(), data.Features()
	if n < 2 {
		return nil, fmt.Errorf("%w: whitening needs >= 2 samples, got %d", ErrTooFewSamples, n)
	}
	if f == 0 {
		return data.Clone(), nil
	}

	x := mat.DenseCopyOf(data.Dense())

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	var eig mat.EigenSym
	if ok := eig.Factorize(&cov, true); !ok {
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrSingular)
	}
	values := eig.Values(nil)

	var w mat.Dense
	eig.VectorsTo(&w)
	for j, lambda := range values {
		if lambda <= eigenFloor {
			return nil, fmt.Errorf("%w: eigenvalue %d is %g", ErrSingular, j, lambda)
		}
		s := 1 / math.Sqrt(lambda)
		for i := 0; i < f; i++ {
			w.Set(i, j, w.At(i, j)*s)
		}
	}

	for j := 0; j < f; j++ {
		col := mat.Col(nil, j, x)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			x.Set(i, j, x.At(i, j)-mean)
		}
	}

	var out mat.Dense
	out.Mul(x, &w)

	res, err := array.FromDense(&out)
	if err != nil {
		return nil, err
	}
	return res.Reshape(data.Shape()...)
}
