package spectrum

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	PowerInto(out, in)
	return out
}

// PowerInto computes |X[k]|^2 into dst, which must have len(in) elements.
// Scratch buffers are pooled, so in steady state this does not allocate.
func PowerInto(dst []float64, in []complex128) {
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(dst, re, im)
	putScratch(buf)
}

// OneSidedPSD converts the half spectrum of a windowed frame into a one-sided
// power spectral density in units²/Hz, written into dst.
//
// frameSize is the transform length, windowEnergy Σw[n]². Every bin except
// DC and (for even frameSize) Nyquist is doubled to account for the folded
// negative frequencies.
func OneSidedPSD(dst []float64, bins []complex128, frameSize int, sampleRate, windowEnergy float64) error {
	if len(dst) != len(bins) {
		return fmt.Errorf("psd dst/bins length mismatch: %d != %d", len(dst), len(bins))
	}
	if sampleRate <= 0 || windowEnergy <= 0 {
		return fmt.Errorf("psd requires positive sample rate and window energy: %f, %f", sampleRate, windowEnergy)
	}

	PowerInto(dst, bins)

	scale := 1 / (sampleRate * windowEnergy)
	last := len(dst)
	if frameSize%2 == 0 {
		last--
	}
	for k := range dst {
		if k > 0 && k < last {
			dst[k] *= 2 * scale
			continue
		}
		dst[k] *= scale
	}
	return nil
}

// InterpolateLinearInto performs piecewise-linear interpolation at queryX,
// writing into dst, which must have len(queryX) elements.
//
// x must be strictly increasing and have the same length as y. Queries
// outside [x[0], x[len-1]] take the nearest endpoint value.
func InterpolateLinearInto(dst, x, y, queryX []float64) error {
	if len(dst) != len(queryX) {
		return fmt.Errorf("interpolate dst/query length mismatch: %d != %d", len(dst), len(queryX))
	}
	if err := validateAxis(x, y); err != nil {
		return err
	}
	interpolate(dst, x, y, queryX)
	return nil
}

func validateAxis(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func interpolate(out, x, y, queryX []float64) {
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}
		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
}
