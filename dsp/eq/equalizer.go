package eq

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/fourier"
)

// Equalizer applies gain profiles to whole signals. It holds only immutable
// configuration and is safe for concurrent use.
type Equalizer struct {
	cfg Config
}

// New creates an Equalizer from the default config and opts.
func New(opts ...Option) (*Equalizer, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	return &Equalizer{cfg: cfg}, nil
}

// Config returns a copy of the equalizer configuration.
func (e *Equalizer) Config() Config {
	cfg := e.cfg
	cfg.Catalog = append(Catalog(nil), e.cfg.Catalog...)
	return cfg
}

// Process returns a new signal of the same length and sample rate with
// profile applied. The input is not modified.
func (e *Equalizer) Process(sig audio.Signal, profile Profile) (audio.Signal, error) {
	if err := sig.Validate(); err != nil {
		return audio.Signal{}, err
	}
	if err := profile.Validate(e.cfg.Catalog); err != nil {
		return audio.Signal{}, err
	}

	n := sig.Len()
	mask := BuildMask(n, sig.SampleRate, profile, e.cfg)

	plan, err := e.cfg.Backend.NewReal(n)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("eq: %w", err)
	}

	bins := make([]complex128, fourier.Bins(n))
	if err := plan.Forward(bins, sig.Float64()); err != nil {
		return audio.Signal{}, fmt.Errorf("eq: %w", err)
	}

	applyMask(bins, mask)

	out := make([]float64, n)
	if err := plan.Inverse(out, bins); err != nil {
		return audio.Signal{}, fmt.Errorf("eq: %w", err)
	}

	for i, v := range out {
		out[i] = core.ClipUnit(v)
	}
	return audio.FromFloat64Samples(out, sig.SampleRate), nil
}

// applyMask scales real and imaginary parts by the same real factor, which
// leaves every bin's phase untouched.
func applyMask(bins []complex128, mask Mask) {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.MulBlockInPlace(re, mask)
	vecmath.MulBlockInPlace(im, mask)
	for i := range bins {
		bins[i] = complex(re[i], im[i])
	}
}

// Equalize applies profile to sig with the default configuration.
func Equalize(sig audio.Signal, profile Profile) (audio.Signal, error) {
	e, err := New()
	if err != nil {
		return audio.Signal{}, err
	}
	return e.Process(sig, profile)
}
