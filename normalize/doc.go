// Package normalize rescales sample arrays before they are handed to a model.
//
// [Apply] dispatches on a closed [Policy] enum. Configuration strings are
// mapped to policies once, by [ParsePolicy], so an unknown name fails at load
// time with a [*ConfigError] instead of deep inside a pipeline.
//
// Every function returns a new array; inputs are never modified.
//
// Statistics follow the conventions of common scaler implementations:
// standard deviations are population values, and features with zero spread
// are centred but not scaled.
package normalize
