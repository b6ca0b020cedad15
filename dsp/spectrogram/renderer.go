package spectrogram

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/fourier"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-eq/dsp/window"
)

// Renderer turns signals into spectrogram grids. It holds only immutable
// configuration and is safe for concurrent use; every call allocates its
// own transform and scratch buffers.
type Renderer struct {
	cfg    Config
	coeffs []float64
	energy float64
	axis   SymLog
}

// New creates a Renderer from the default config and opts.
func New(opts ...Option) (*Renderer, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs := window.Generate(cfg.Window, cfg.WindowSize)
	energy := window.EnergySum(coeffs)
	if energy <= 0 {
		return nil, fmt.Errorf("%w: window has no energy", ErrInvalidConfig)
	}

	return &Renderer{
		cfg:    cfg,
		coeffs: coeffs,
		energy: energy,
		axis:   NewSymLog(cfg.LinThresh, cfg.LinScale),
	}, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Render computes the spectrogram of sig. The input is not modified.
func (r *Renderer) Render(sig audio.Signal) (*Spectrogram, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	rate := float64(sig.SampleRate)
	maxFreq := sig.Nyquist()
	if r.cfg.MaxFreq > 0 && r.cfg.MaxFreq < maxFreq {
		maxFreq = r.cfg.MaxFreq
	}
	if !(maxFreq > r.cfg.MinFreq) {
		return nil, fmt.Errorf("%w: display range [%g, %g] Hz is empty at %d Hz",
			ErrInvalidConfig, r.cfg.MinFreq, maxFreq, sig.SampleRate)
	}

	size := r.cfg.WindowSize
	hop := r.cfg.Hop()

	x := sig.Float64()
	if len(x) < size {
		padded := make([]float64, size)
		copy(padded, x)
		x = padded
	}
	cols := r.cfg.Columns(len(x))

	plan, err := r.cfg.Backend.NewReal(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	binFreqs := fourier.Frequencies(size, rate)
	rowFreqs := r.axis.Points(r.cfg.MinFreq, maxFreq, r.cfg.Rows)

	out := &Spectrogram{
		Columns:     cols,
		Rows:        r.cfg.Rows,
		Data:        make([]float64, cols*r.cfg.Rows),
		Times:       make([]float64, cols),
		Frequencies: rowFreqs,
		MinDB:       r.cfg.MinDB,
		MaxDB:       r.cfg.MaxDB,
		SampleRate:  sig.SampleRate,
	}

	frame := make([]float64, size)
	bins := make([]complex128, fourier.Bins(size))
	psd := make([]float64, len(bins))

	for c := 0; c < cols; c++ {
		start := c * hop
		copy(frame, x[start:start+size])
		if err := window.ApplyCoefficientsInPlace(frame, r.coeffs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		if err := plan.Forward(bins, frame); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		if err := spectrum.OneSidedPSD(psd, bins, size, rate, r.energy); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}

		for k, p := range psd {
			db := core.LinearPowerToDB(p)
			if math.IsNaN(db) {
				return nil, fmt.Errorf("%w: non-finite energy in column %d", ErrRenderFailure, c)
			}
			psd[k] = core.Clamp(db, r.cfg.MinDB, r.cfg.MaxDB)
		}

		if err := spectrum.InterpolateLinearInto(out.Column(c), binFreqs, psd, rowFreqs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		out.Times[c] = (float64(start) + float64(size)/2) / rate
	}

	return out, nil
}

// Render computes the spectrogram of sig with the default configuration.
func Render(sig audio.Signal) (*Spectrogram, error) {
	r, err := New()
	if err != nil {
		return nil, err
	}
	return r.Render(sig)
}
