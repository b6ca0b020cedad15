// Package window generates tapering windows for short-time spectral
// analysis frames.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
)

var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var typeNames = map[Type]string{
	TypeRectangular:         "rectangular",
	TypeHann:                "hann",
	TypeHamming:             "hamming",
	TypeBlackman:            "blackman",
	TypeBlackmanHarris4Term: "blackmanharris",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a window name such as "hann" or "blackman".
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, s := range typeNames {
		if s == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownType, name)
}

// Generate returns symmetric window coefficients of the given length,
// w[0] == w[length-1].
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length))
	}
	return out
}

// ApplyCoefficientsInPlace multiplies samples by coeffs in-place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

// EnergySum returns Σ w[n]², the normalization term of a power spectral
// density estimate.
func EnergySum(coeffs []float64) float64 {
	sum := 0.0
	for _, w := range coeffs {
		sum += w * w
	}
	return sum
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(n) / float64(size-1)
}
