// Package fourier provides forward and inverse real Fourier transforms of
// arbitrary length behind a swappable [Backend].
//
// The forward transform of n real samples yields n/2+1 non-negative
// frequency bins; the inverse takes those bins back to exactly n samples,
// which resolves the odd/even length ambiguity of the half spectrum. The
// inverse is normalized by 1/n so Inverse(Forward(x)) == x.
//
// [AlgoFFT] is the default backend, one algo-fft plan per length (the
// library picks radix or Bluestein kernels itself). [GoDSP] delegates to
// github.com/mjibson/go-dsp.
package fourier
