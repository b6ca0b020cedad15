package spectrogram

import "math"

// SymLog is a symmetric logarithmic axis: linear within ±LinThresh and
// logarithmic (in Base) outside, continuous at the threshold. LinScale
// stretches the linear region relative to one decade.
type SymLog struct {
	LinThresh float64
	LinScale  float64
	Base      float64
}

// NewSymLog returns a base-10 axis.
func NewSymLog(linThresh, linScale float64) SymLog {
	return SymLog{LinThresh: linThresh, LinScale: linScale, Base: 10}
}

func (s SymLog) linScaleAdj() float64 {
	return s.LinScale / (1 - 1/s.Base)
}

// Forward maps a value onto the axis coordinate.
func (s SymLog) Forward(x float64) float64 {
	adj := s.linScaleAdj()
	ax := math.Abs(x)
	if ax <= s.LinThresh {
		return x * adj
	}
	return math.Copysign(s.LinThresh*(adj+math.Log(ax/s.LinThresh)/math.Log(s.Base)), x)
}

// Inverse maps an axis coordinate back to a value.
func (s SymLog) Inverse(y float64) float64 {
	adj := s.linScaleAdj()
	ay := math.Abs(y)
	if ay <= s.LinThresh*adj {
		return y / adj
	}
	return math.Copysign(s.LinThresh*math.Pow(s.Base, ay/s.LinThresh-adj), y)
}

// Points returns n values evenly spaced on the axis between lo and hi, both
// included. n == 1 yields lo.
func (s SymLog) Points(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	y0 := s.Forward(lo)
	y1 := s.Forward(hi)
	out[0] = lo
	if n == 1 {
		return out
	}
	for i := 1; i < n-1; i++ {
		out[i] = s.Inverse(y0 + (y1-y0)*float64(i)/float64(n-1))
	}
	out[n-1] = hi
	return out
}
