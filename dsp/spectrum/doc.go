// Package spectrum provides helpers that operate on half-spectrum bins
// produced by a [fourier.Real] transform: power, one-sided power spectral
// density and resampling along the frequency axis.
//
// [fourier.Real]: github.com/cwbudde/algo-eq/dsp/fourier.Real
package spectrum
