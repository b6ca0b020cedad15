package audio

import "fmt"

// Signal is a single-channel buffer of canonical samples.
type Signal struct {
	Samples    []float32
	SampleRate int
}

// NewSignal normalizes raw and pairs the result with sampleRate.
func NewSignal(raw RawBuffer, sampleRate int) (Signal, error) {
	if sampleRate <= 0 {
		return Signal{}, fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidSignal, sampleRate)
	}
	samples, err := Normalize(raw)
	if err != nil {
		return Signal{}, err
	}
	return Signal{Samples: samples, SampleRate: sampleRate}, nil
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.Samples) }

// Nyquist returns half the sample rate in Hz.
func (s Signal) Nyquist() float64 { return float64(s.SampleRate) / 2 }

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Validate reports ErrInvalidSignal for empty signals or bad sample rates.
func (s Signal) Validate() error {
	if len(s.Samples) == 0 {
		return fmt.Errorf("%w: signal must not be empty", ErrInvalidSignal)
	}
	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidSignal, s.SampleRate)
	}
	return nil
}

// Float64 returns the samples widened to float64 in a new slice.
func (s Signal) Float64() []float64 {
	out := make([]float64, len(s.Samples))
	for i, v := range s.Samples {
		out[i] = float64(v)
	}
	return out
}

// FromFloat64Samples builds a Signal by narrowing samples to float32. No scaling
// or clipping is applied.
func FromFloat64Samples(samples []float64, sampleRate int) Signal {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}
	return Signal{Samples: out, SampleRate: sampleRate}
}
