// Package spectrogram computes short-time Fourier transform energy grids
// with a symmetric-log frequency axis.
//
// Each column is one analysis window (default 1024 samples, Hann, 512
// samples overlap) turned into a one-sided power spectral density in dB,
// clamped to the display range (default [-90, 0] dB). The linear frequency
// bins are then resampled onto Rows points evenly spaced on a [SymLog] axis
// from MinFreq (default 20 Hz) to the Nyquist frequency; the axis is linear
// below LinThresh (default 700 Hz) and logarithmic above it.
//
// Padding policy: a trailing partial window is dropped. A signal shorter
// than one window is zero-padded to exactly one window, so the column count
// is
//
//	max(1, floor((N - WindowSize) / (WindowSize - Overlap)) + 1)
//
// Color mapping is not part of this package; see package render.
package spectrogram
