// Package split partitions ordered sequences into contiguous, non-overlapping
// parts at a set of cut points.
//
// Cut points are offsets into the sequence. The boundaries 0 and len(seq)
// are always implied, so n cut points produce n+1 partitions:
//
//	parts, _ := split.Split([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, split.Points(2, 5, 7))
//	// [1 2] [3 4 5] [6 7] [8 9]
//
// A cut point equal to its neighbour yields an empty partition, not an error,
// so splitting is total over valid boundaries. Cut points outside [0, len(seq)]
// or in decreasing order fail with a [*BoundaryError].
//
// [Half] defers the cut to [HalfIndex], which rounds odd lengths up: a
// sequence of 11 elements is cut at 6, giving a first part one element
// longer than the second.
package split
