package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dataset/array"
	"github.com/cwbudde/algo-dataset/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{3 + 4i, -1, 0, 2i}
	got := Magnitude(in)
	want := make([]float64, len(in))
	for i, c := range in {
		want[i] = cmplx.Abs(c)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) != nil")
	}
}

func TestHann(t *testing.T) {
	w := Hann(5)
	testutil.RequireSliceNearlyEqual(t, w, []float64{0, 0.5, 1, 0.5, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, Hann(1), []float64{1}, 0)
}

func TestFeaturesSinusoid(t *testing.T) {
	const n = 16
	rows := make([]float64, 0, 2*n)
	for k := 0; k < n; k++ {
		rows = append(rows, math.Cos(2*math.Pi*2*float64(k)/n))
	}
	for k := 0; k < n; k++ {
		rows = append(rows, 1)
	}
	in := array.MustNew([]int{2, n}, rows)

	out, err := Features(in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, out.Shape(), []int{2, Bins(n)})

	for k, v := range out.Row(0) {
		want := 0.0
		if k == 2 {
			want = n / 2
		}
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("cosine bin %d = %v, want %v", k, v, want)
		}
	}

	dc := out.Row(1)
	if math.Abs(dc[0]-n) > 1e-9 {
		t.Fatalf("DC bin = %v, want %d", dc[0], n)
	}
	for k := 1; k < len(dc); k++ {
		if math.Abs(dc[k]) > 1e-9 {
			t.Fatalf("DC row bin %d = %v, want 0", k, dc[k])
		}
	}
}

func TestFeaturesOptions(t *testing.T) {
	in := array.MustNew([]int{1, 2, 4}, testutil.Ramp(1, 8))

	padded, err := Features(in, WithSize(16), WithHann())
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireShape(t, padded.Shape(), []int{1, 9})
	testutil.RequireFinite(t, padded.Data())

	if _, err := Features(in, WithSize(0)); !errors.Is(err, ErrSize) {
		t.Fatalf("error = %v, want ErrSize", err)
	}
	if _, err := Features(array.MustNew([]int{2, 0}, nil)); !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
}

func BenchmarkFeatures(b *testing.B) {
	in := array.MustNew([]int{32, 256}, testutil.DeterministicNoise(1, 1, 32*256))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Features(in, WithHann()); err != nil {
			b.Fatal(err)
		}
	}
}
