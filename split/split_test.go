package split

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-dataset/array"
)

func concat[T any](parts [][]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestSplitDocExample(t *testing.T) {
	parts, err := Split([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Points(2, 5, 7))
	if err != nil {
		t.Fatal(err)
	}

	want := [][]int{{1, 2}, {3, 4, 5}, {6, 7}, {8, 9}}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	for i := range want {
		if !slices.Equal(parts[i], want[i]) {
			t.Errorf("part %d = %v, want %v", i, parts[i], want[i])
		}
	}
}

func TestSplitCompletenessAndCount(t *testing.T) {
	seq := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name string
		cuts Cuts
	}{
		{name: "single int", cuts: At(4)},
		{name: "collection", cuts: Points(1, 3, 8)},
		{name: "empty collection", cuts: Points()},
		{name: "zero value", cuts: Cuts{}},
		{name: "boundary cuts", cuts: Points(0, 10)},
		{name: "repeated cut", cuts: Points(3, 3, 3)},
		{name: "half", cuts: Half()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Split(seq, tt.cuts)
			if err != nil {
				t.Fatal(err)
			}
			if len(parts) != tt.cuts.Count()+1 {
				t.Fatalf("got %d parts, want %d", len(parts), tt.cuts.Count()+1)
			}
			if got := concat(parts); !slices.Equal(got, seq) {
				t.Fatalf("concatenation = %v, want %v", got, seq)
			}
		})
	}
}

func TestSplitBoundaryValidation(t *testing.T) {
	seq := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name string
		cuts Cuts
		want error
	}{
		{name: "negative", cuts: At(-1), want: ErrOutOfRange},
		{name: "past end", cuts: At(6), want: ErrOutOfRange},
		{name: "second past end", cuts: Points(2, 9), want: ErrOutOfRange},
		{name: "decreasing", cuts: Points(4, 2), want: ErrUnordered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(seq, tt.cuts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var be *BoundaryError
			if !errors.As(err, &be) {
				t.Fatalf("error %T is not a *BoundaryError", err)
			}
			if be.Length != len(seq) {
				t.Errorf("BoundaryError.Length = %d, want %d", be.Length, len(seq))
			}
		})
	}
}

func TestSplitEmptySequence(t *testing.T) {
	parts, err := Split([]float64{}, Points())
	if err != nil {
		t.Fatalf("Split(empty, ()) error = %v", err)
	}
	if len(parts) != 1 || len(parts[0]) != 0 {
		t.Fatalf("Split(empty, ()) = %v, want one empty partition", parts)
	}

	if _, err := Split([]float64{}, Half()); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Split(empty, Half()) error = %v, want ErrEmpty", err)
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	seq := []int{1, 2, 3, 4}
	parts, err := Split(seq, At(2))
	if err != nil {
		t.Fatal(err)
	}

	parts[0] = append(parts[0], 99)
	if seq[2] != 3 {
		t.Fatalf("append to a partition overwrote the input: %v", seq)
	}
}

func TestSplitAllAttachesIndex(t *testing.T) {
	seqs := [][]int{{1, 2, 3, 4}, {5, 6}}
	if _, err := SplitAll(seqs, At(3)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}

	out, err := SplitAll(seqs, Half())
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(out[0][0], []int{1, 2}) || !slices.Equal(out[1][0], []int{5}) {
		t.Fatalf("SplitAll half = %v", out)
	}
}

func TestSplitArray(t *testing.T) {
	a := array.MustNew([]int{5, 2}, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	parts, err := SplitArray(a, Points(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}

	lens := []int{parts[0].Len(), parts[1].Len(), parts[2].Len()}
	if !slices.Equal(lens, []int{1, 2, 2}) {
		t.Fatalf("partition lengths = %v", lens)
	}
	if !slices.Equal(parts[1].Data(), []float64{2, 3, 4, 5}) {
		t.Fatalf("part 1 = %v", parts[1].Data())
	}

	if _, err := SplitArray(a, At(6)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
}
