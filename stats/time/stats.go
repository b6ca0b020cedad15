// Package time summarizes the level of canonical sample buffers.
package time

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Stats holds time-domain level statistics of a signal.
//
//nolint:revive
type Stats struct {
	Length  int
	Peak    float64 // max |x|
	Peak_dB float64
	RMS     float64
	RMS_dB  float64
	// CrestFactor is Peak / RMS, 0 for silence.
	CrestFactor float64
	// Clipped counts samples at full scale, |x| >= 1.
	Clipped int
}

// Calculate computes level statistics of samples in one pass.
func Calculate(samples []float32) Stats {
	s := Stats{Length: len(samples)}
	if len(samples) == 0 {
		s.Peak_dB = math.Inf(-1)
		s.RMS_dB = math.Inf(-1)
		return s
	}

	var sumSq float64
	for _, v := range samples {
		x := float64(v)
		a := math.Abs(x)
		if a > s.Peak {
			s.Peak = a
		}
		if a >= 1 {
			s.Clipped++
		}
		sumSq += x * x
	}

	s.RMS = math.Sqrt(sumSq / float64(len(samples)))
	s.Peak_dB = core.LinearToDB(s.Peak)
	s.RMS_dB = core.LinearToDB(s.RMS)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}
