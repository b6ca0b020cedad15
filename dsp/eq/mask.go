package eq

import (
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/fourier"
)

// Mask holds one real gain factor per half-spectrum bin.
type Mask []float64

// BuildMask derives the per-bin gain factors for a length-n transform at
// sampleRate. profile must already be validated against cfg.Catalog.
func BuildMask(n, sampleRate int, profile Profile, cfg Config) Mask {
	freqs := fourier.Frequencies(n, float64(sampleRate))

	mask := make(Mask, len(freqs))
	for k := range mask {
		mask[k] = 1
	}

	for _, band := range cfg.Bands() {
		db, ok := profile.Gain(band.Name)
		if !ok || db == 0 {
			continue
		}
		factor := core.DBToLinear(db)

		for k, f := range freqs {
			if band.Contains(f) {
				mask[k] *= factor
			}
		}
	}
	return mask
}
