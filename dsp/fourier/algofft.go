package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFT is the algo-fft backed [Backend]. algo-fft plans accept any
// length; non-power-of-two sizes run its Bluestein kernel.
type AlgoFFT struct{}

// Name implements [Backend].
func (AlgoFFT) Name() string { return "algofft" }

// NewReal implements [Backend].
func (AlgoFFT) NewReal(n int) (Real, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	return &algoReal{
		n:    n,
		plan: plan,
		time: make([]complex128, n),
		freq: make([]complex128, n),
	}, nil
}

type algoReal struct {
	n    int
	plan *algofft.Plan[complex128]
	time []complex128
	freq []complex128
}

func (r *algoReal) Len() int { return r.n }

func (r *algoReal) Forward(dst []complex128, src []float64) error {
	if err := checkForward(r.n, dst, src); err != nil {
		return err
	}
	for i, v := range src {
		r.time[i] = complex(v, 0)
	}
	if err := r.plan.Forward(r.freq, r.time); err != nil {
		return fmt.Errorf("fourier: forward: %w", err)
	}
	copy(dst, r.freq[:len(dst)])
	return nil
}

// Inverse mirrors src into the full spectrum, so the imaginary parts of the
// DC and Nyquist bins are ignored.
func (r *algoReal) Inverse(dst []float64, src []complex128) error {
	if err := checkInverse(r.n, dst, src); err != nil {
		return err
	}
	hermitian(r.freq, src)
	if err := r.plan.Inverse(r.time, r.freq); err != nil {
		return fmt.Errorf("fourier: inverse: %w", err)
	}
	for i := range dst {
		dst[i] = real(r.time[i])
	}
	return nil
}
