// Package outlier flags, removes and replaces extreme values in flat numeric
// data. Detection works either on raw values against a fixed threshold or on
// global z-scores.
package outlier
