package normalize

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/internal/testutil"
)

func TestWhitenIdentityCovariance(t *testing.T) {
	const n = 200
	noise := testutil.DeterministicNoise(21, 1, 3*n)
	data := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		a, b, c := noise[3*i], noise[3*i+1], noise[3*i+2]
		// Three correlated features.
		data = append(data, a, a+0.5*b, 2*a-b+c+3)
	}
	in := array.MustNew([]int{n, 3}, data)

	out, err := Whiten(in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, out.Shape(), []int{n, 3})

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, out.Dense(), nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if got := cov.At(i, j); math.Abs(got-want) > 1e-9 {
				t.Fatalf("cov[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestWhitenErrors(t *testing.T) {
	if _, err := Whiten(array.MustNew([]int{1, 2}, []float64{1, 2})); !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("error = %v, want ErrTooFewSamples", err)
	}

	// The second feature is an exact copy of the first.
	dup := array.MustNew([]int{3, 2}, []float64{1, 1, 2, 2, 4, 4})
	if _, err := Whiten(dup); !errors.Is(err, ErrSingular) {
		t.Fatalf("error = %v, want ErrSingular", err)
	}
}
