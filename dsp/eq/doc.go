// Package eq implements a whole-buffer, zero-phase multi-band equalizer in
// the frequency domain.
//
// The signal is transformed once, every half-spectrum bin k (at
// k*sampleRate/N Hz) is scaled by the linear gain 10^(dB/20) of the band
// whose [Low, High) interval contains it, and the result is transformed back
// to exactly N samples and hard-clipped to [-1, 1]. Bins outside every band
// keep unity gain.
//
// The default [Catalog] is the fixed five-band table:
//
//	60Hz   [0, 150)
//	250Hz  [150, 600)
//	1kHz   [600, 2500)
//	4kHz   [2500, 10000)
//	16kHz  [10000, 22050)
//
// By default the last band ends at 22050 Hz regardless of the signal's
// Nyquist frequency ([EdgeFixed]); [EdgeNyquist] extends it to Nyquist.
package eq
