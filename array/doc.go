// Package array provides a dense, row-major float64 array with an explicit
// shape. The leading dimension is the sample axis: splitting, concatenation
// and normalization in the sibling packages all operate along it.
//
// Arrays are treated as values. Operations return new arrays; views returned
// by [Array.Slice], [Array.Row] and [Array.Reshape] share the backing data
// and must not be written to by callers that did not allocate it.
package array
