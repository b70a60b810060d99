// Package dataset assembles per-class sample arrays into aligned
// (data, one-hot label) partitions.
//
// Every class is split at the same cut points. Partitions with the same
// index are concatenated across classes in class order, so row i of an
// assembled data partition always belongs to row i of its label partition.
// Each data partition is then normalized, reshaped and converted to float32.
//
//	pairs, err := dataset.Assemble(classes, split.Points(70, 90), 2,
//		dataset.WithPolicy(normalize.PolicyRange01),
//		dataset.WithFeatureShape(3840, 1))
//
// [Load] reads one class per file and returns a [Set] whose accessors
// cannot fail.
package dataset
