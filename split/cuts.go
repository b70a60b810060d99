package split

import (
	"fmt"
	"math"
	"slices"
)

// Cuts is an immutable set of cut points. The zero value is the empty set,
// which splits a sequence into a single partition.
type Cuts struct {
	points []int
	half   bool
}

// At returns a single cut, producing two partitions.
func At(i int) Cuts {
	return Cuts{points: []int{i}}
}

// Points returns the given cut points in order. Callers supply them sorted;
// decreasing points are rejected at split time.
func Points(p ...int) Cuts {
	return Cuts{points: slices.Clone(p)}
}

// Half returns a single cut at the midpoint of whatever is split, as
// computed by [HalfIndex].
func Half() Cuts {
	return Cuts{half: true}
}

// IsHalf reports whether the cut is deferred to the midpoint.
func (c Cuts) IsHalf() bool { return c.half }

// Count returns the number of cut points; partitions = Count()+1.
func (c Cuts) Count() int {
	if c.half {
		return 1
	}
	return len(c.points)
}

// Points returns a copy of the explicit cut points. It is empty for [Half].
func (c Cuts) Points() []int { return slices.Clone(c.points) }

// String implements fmt.Stringer.
func (c Cuts) String() string {
	if c.half {
		return "half"
	}
	return fmt.Sprint(c.points)
}

// Resolve returns the validated cut points for a sequence of the given length.
// Half cuts are turned into their midpoint index.
func (c Cuts) Resolve(length int) ([]int, error) {
	if c.half {
		mid, err := HalfIndex([]int{length}, 0)
		if err != nil {
			return nil, err
		}
		return []int{mid}, nil
	}

	prev := 0
	for i, p := range c.points {
		if p < 0 || p > length {
			return nil, &BoundaryError{Position: i, Value: p, Length: length, Err: ErrOutOfRange}
		}
		if p < prev {
			return nil, &BoundaryError{Position: i, Value: p, Length: length, Err: ErrUnordered}
		}
		prev = p
	}

	return slices.Clone(c.points), nil
}

// Boundaries returns [0, cuts..., length] for a sequence of the given length.
func (c Cuts) Boundaries(length int) ([]int, error) {
	pts, err := c.Resolve(length)
	if err != nil {
		return nil, err
	}

	b := make([]int, 0, len(pts)+2)
	b = append(b, 0)
	b = append(b, pts...)
	b = append(b, length)
	return b, nil
}

// Fractions derives cut points from partition fractions. Each fraction is the
// share of length given to one leading partition; the remainder forms the
// last partition. Fractions(100, 0.7, 0.2) yields cuts at 70 and 90.
// Offsets are floored.
func Fractions(length int, fracs ...float64) (Cuts, error) {
	if length < 0 {
		return Cuts{}, fmt.Errorf("%w: negative length %d", ErrFraction, length)
	}

	points := make([]int, 0, len(fracs))
	total := 0.0
	for i, f := range fracs {
		if !(f > 0 && f < 1) {
			return Cuts{}, fmt.Errorf("%w: fraction #%d = %v not in (0, 1)", ErrFraction, i, f)
		}
		total += f
		if total >= 1 {
			return Cuts{}, fmt.Errorf("%w: fractions sum to %v, want < 1", ErrFraction, total)
		}
		// The epsilon keeps 0.7+0.2 from flooring to 89 of 100.
		points = append(points, int(math.Floor(total*float64(length)+1e-9)))
	}

	return Cuts{points: points}, nil
}
