package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-eq/stats/frequency"
)

func ExampleCalculate() {
	energy := []float64{0, 1, 2, 1, 0}
	freqs := []float64{0, 1000, 2000, 3000, 4000}
	s := frequencystats.Calculate(energy, freqs)
	fmt.Printf("centroid=%.0f rolloff=%.0f\n", s.Centroid, s.Rolloff)

	// Output:
	// centroid=2000 rolloff=3000
}
