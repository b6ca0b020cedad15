// Package frequency summarizes where the energy of a signal lies, overall
// and per equalizer band.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/fourier"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

// rolloffFraction is the energy share below the rolloff frequency.
const rolloffFraction = 0.85

// Stats holds frequency-domain statistics of a one-sided power spectrum.
type Stats struct {
	BinCount int
	// Energy is the mean-square level of the signal (Parseval).
	Energy   float64
	Centroid float64 // power-weighted mean frequency (Hz)
	Rolloff  float64 // frequency below which 85% of the energy lies (Hz)
	Flatness float64 // geometric / arithmetic mean of power, 0..1
}

// BandLevel is the mean-square energy a band contributes to a signal.
type BandLevel struct {
	Name   string
	Energy float64
	DB     float64
}

// Report combines overall statistics and the per-band breakdown.
type Report struct {
	Stats
	Bands []BandLevel
}

// Band returns the level of the named band.
func (r Report) Band(name string) (BandLevel, bool) {
	for _, b := range r.Bands {
		if b.Name == name {
			return b, true
		}
	}
	return BandLevel{}, false
}

// Weights returns per-bin scale factors turning |X_k|^2 of a length-n
// transform into mean-square contributions: 1/n^2 for DC and the Nyquist bin
// of even n, 2/n^2 otherwise.
func Weights(n int) []float64 {
	bins := fourier.Bins(n)
	w := make([]float64, bins)
	scale := 1 / (float64(n) * float64(n))
	for k := range w {
		w[k] = 2 * scale
	}
	w[0] = scale
	if n%2 == 0 && bins > 1 {
		w[bins-1] = scale
	}
	return w
}

// Calculate computes statistics from per-bin mean-square energies at freqs.
func Calculate(energy, freqs []float64) Stats {
	s := Stats{BinCount: len(energy)}
	if len(energy) == 0 || len(energy) != len(freqs) {
		return s
	}

	var weighted, logSum float64
	positive := true
	for k, e := range energy {
		s.Energy += e
		weighted += e * freqs[k]
		if e > 0 {
			logSum += math.Log(e)
		} else {
			positive = false
		}
	}
	if s.Energy == 0 {
		return s
	}

	s.Centroid = weighted / s.Energy

	threshold := rolloffFraction * s.Energy
	var acc float64
	for k, e := range energy {
		acc += e
		if acc >= threshold {
			s.Rolloff = freqs[k]
			break
		}
	}

	if positive {
		n := float64(len(energy))
		s.Flatness = math.Exp(logSum/n) / (s.Energy / n)
	}
	return s
}

// BandLevels sums energy over the bins of each catalog band. Pass
// [eq.Config.Bands] to honor the equalizer's edge policy.
func BandLevels(energy, freqs []float64, catalog eq.Catalog) []BandLevel {
	out := make([]BandLevel, len(catalog))
	for i, b := range catalog {
		out[i].Name = b.Name
		for k, f := range freqs {
			if k < len(energy) && b.Contains(f) {
				out[i].Energy += energy[k]
			}
		}
		out[i].DB = core.LinearPowerToDB(out[i].Energy)
	}
	return out
}

// Analyze transforms the whole signal once and reports its statistics and
// the levels of the bands cfg's equalizer acts on.
func Analyze(sig audio.Signal, cfg eq.Config) (Report, error) {
	if err := sig.Validate(); err != nil {
		return Report{}, err
	}
	backend := cfg.Backend
	if backend == nil {
		backend = fourier.Default()
	}

	n := sig.Len()
	plan, err := backend.NewReal(n)
	if err != nil {
		return Report{}, err
	}
	bins := make([]complex128, fourier.Bins(n))
	if err := plan.Forward(bins, sig.Float64()); err != nil {
		return Report{}, err
	}

	energy := spectrum.Power(bins)
	vecmath.MulBlockInPlace(energy, Weights(n))
	freqs := fourier.Frequencies(n, float64(sig.SampleRate))

	return Report{
		Stats: Calculate(energy, freqs),
		Bands: BandLevels(energy, freqs, cfg.Bands()),
	}, nil
}
