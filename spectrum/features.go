package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dataset/array"
)

var (
	// ErrEmpty reports samples without any feature values.
	ErrEmpty = errors.New("spectrum: samples have no features")
	// ErrSize reports an invalid FFT size.
	ErrSize = errors.New("spectrum: invalid FFT size")
)

type config struct {
	hann bool
	size int
}

// Option configures [Features].
type Option func(*config)

// WithHann tapers every sample with a symmetric Hann window before the FFT.
func WithHann() Option {
	return func(c *config) { c.hann = true }
}

// WithSize sets the FFT length. Shorter samples are zero-padded, longer ones
// truncated. The default is the flattened sample length.
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// Hann returns symmetric Hann window coefficients of the given length.
func Hann(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return out
}

// Bins returns the number of magnitude bins kept for an FFT of length n.
func Bins(n int) int { return n/2 + 1 }

// Features returns the magnitude spectrum of every sample of samples as an
// (N, n/2+1) array, where n is the FFT length.
func Features(samples *array.Array, opts ...Option) (*array.Array, error) {
	cfg := config{size: samples.Features()}
	for _, o := range opts {
		o(&cfg)
	}
	if samples.Features() == 0 {
		return nil, ErrEmpty
	}
	if cfg.size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, cfg.size)
	}

	n := cfg.size
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: plan of size %d: %w", n, err)
	}

	used := min(n, samples.Features())
	var taper []float64
	if cfg.hann {
		taper = Hann(used)
	}

	bins := Bins(n)
	out := array.Zeros(samples.Len(), bins)
	frame := make([]float64, used)
	in := make([]complex128, n)
	freq := make([]complex128, n)

	for i := 0; i < samples.Len(); i++ {
		copy(frame, samples.Row(i)[:used])
		if taper != nil {
			vecmath.MulBlockInPlace(frame, taper)
		}
		for k := range in {
			in[k] = 0
		}
		for k, v := range frame {
			in[k] = complex(v, 0)
		}

		if err := plan.Forward(freq, in); err != nil {
			return nil, fmt.Errorf("spectrum: sample %d: %w", i, err)
		}
		magnitudeInto(out.Row(i), freq[:bins])
	}
	return out, nil
}
