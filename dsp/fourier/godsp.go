package fourier

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// GoDSP is a [Backend] built on github.com/mjibson/go-dsp/fft, which handles
// arbitrary lengths natively.
type GoDSP struct{}

// Name implements [Backend].
func (GoDSP) Name() string { return "godsp" }

// NewReal implements [Backend].
func (GoDSP) NewReal(n int) (Real, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return &goDSPReal{n: n, full: make([]complex128, n)}, nil
}

type goDSPReal struct {
	n    int
	full []complex128
}

func (r *goDSPReal) Len() int { return r.n }

func (r *goDSPReal) Forward(dst []complex128, src []float64) error {
	if err := checkForward(r.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.FFTReal(src)[:len(dst)])
	return nil
}

func (r *goDSPReal) Inverse(dst []float64, src []complex128) error {
	if err := checkInverse(r.n, dst, src); err != nil {
		return err
	}
	hermitian(r.full, src)
	out := fft.IFFT(r.full)
	for i := range dst {
		dst[i] = real(out[i])
	}
	return nil
}
