package dataset

import (
	"slices"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-dataset/normalize"
	"github.com/cwbudde/algo-dataset/spectrum"
)

// Config holds the assembly settings.
type Config struct {
	Policy          normalize.Policy
	FeatureShape    []int // per-sample shape, one -1 allowed; nil keeps the normalized shape
	SamplesPerClass int   // expected samples per class; 0 accepts any length
	Workers         int
	Spectrum        bool
	SpectrumOptions []spectrum.Option
	Logger          *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns per-feature z-scoring, sequential splitting and a
// no-op logger.
func DefaultConfig() Config {
	return Config{
		Policy:  normalize.PolicyZScoreFeatures,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithPolicy sets the normalization policy applied to every data partition.
func WithPolicy(p normalize.Policy) Option {
	return func(cfg *Config) { cfg.Policy = p }
}

// WithFeatureShape sets the per-sample shape every data partition is
// reshaped to, e.g. (3840, 1). The leading sample dimension is always kept.
// One entry may be -1 and is inferred from the features per sample.
func WithFeatureShape(shape ...int) Option {
	return func(cfg *Config) { cfg.FeatureShape = slices.Clone(shape) }
}

// WithSamplesPerClass requires every class to hold exactly n samples.
// Non-positive values are ignored.
func WithSamplesPerClass(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.SamplesPerClass = n
		}
	}
}

// WithWorkers splits classes on up to n goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithSpectrum replaces every sample by its magnitude spectrum before
// normalization.
func WithSpectrum(opts ...spectrum.Option) Option {
	return func(cfg *Config) {
		cfg.Spectrum = true
		cfg.SpectrumOptions = opts
	}
}

// WithLogger sets the logger for assembly progress. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
