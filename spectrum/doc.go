// Package spectrum turns samples into magnitude-spectrum features.
//
// Each sample is flattened, optionally tapered with a Hann window and
// transformed with a forward FFT. Only the non-negative frequency bins
// [0, n/2] are kept.
package spectrum
