package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeHann, n)
			}
		})
		b.Run("bh4/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Generate(TypeBlackmanHarris4Term, n)
			}
		})
	}
}

func BenchmarkApplyCoefficientsInPlace(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("hann/"+strconv.Itoa(n), func(b *testing.B) {
			coeffs := Generate(TypeHann, n)
			buf := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = ApplyCoefficientsInPlace(buf, coeffs)
			}
		})
	}
}
