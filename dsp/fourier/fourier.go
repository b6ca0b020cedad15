package fourier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLength is returned for transform lengths below 1.
	ErrInvalidLength = errors.New("fourier: transform length must be > 0")
	// ErrLengthMismatch is returned when a buffer does not fit the plan.
	ErrLengthMismatch = errors.New("fourier: buffer length mismatch")
	// ErrUnknownBackend is returned by ByName for unrecognized names.
	ErrUnknownBackend = errors.New("fourier: unknown backend")
)

// Backend creates real transforms of a given length. Backends are safe for
// concurrent use.
type Backend interface {
	Name() string
	NewReal(n int) (Real, error)
}

// Real is a prepared real-to-complex transform of fixed length.
//
// A Real owns scratch memory and must not be shared between goroutines.
type Real interface {
	// Len returns the time-domain length n.
	Len() int
	// Forward writes the n/2+1 spectrum bins of src (length n) into dst.
	Forward(dst []complex128, src []float64) error
	// Inverse writes the n real samples whose half spectrum is src into dst.
	Inverse(dst []float64, src []complex128) error
}

// Default returns the backend used when none is configured.
func Default() Backend { return AlgoFFT{} }

// ByName resolves a backend from its Name.
func ByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "algofft", "algo-fft":
		return AlgoFFT{}, nil
	case "godsp", "go-dsp":
		return GoDSP{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Bins returns the number of half-spectrum bins for a length-n transform.
func Bins(n int) int { return n/2 + 1 }

// Frequencies returns the center frequency in Hz of each half-spectrum bin
// of a length-n transform: k * sampleRate / n.
func Frequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, Bins(n))
	step := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out
}

func checkForward(n int, dst []complex128, src []float64) error {
	if len(src) != n {
		return fmt.Errorf("%w: src %d != %d", ErrLengthMismatch, len(src), n)
	}
	if len(dst) != Bins(n) {
		return fmt.Errorf("%w: dst %d != %d", ErrLengthMismatch, len(dst), Bins(n))
	}
	return nil
}

func checkInverse(n int, dst []float64, src []complex128) error {
	if len(src) != Bins(n) {
		return fmt.Errorf("%w: src %d != %d", ErrLengthMismatch, len(src), Bins(n))
	}
	if len(dst) != n {
		return fmt.Errorf("%w: dst %d != %d", ErrLengthMismatch, len(dst), n)
	}
	return nil
}

// hermitian expands a half spectrum into the full length-n spectrum of a
// real signal.
func hermitian(full, half []complex128) {
	n := len(full)
	copy(full, half)
	for k := len(half); k < n; k++ {
		c := half[n-k]
		full[k] = complex(real(c), -imag(c))
	}
}
