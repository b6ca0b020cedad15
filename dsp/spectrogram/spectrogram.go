package spectrogram

import "fmt"

// Spectrogram is a time x frequency grid of intensities in dB.
//
// Data is column-major: the Rows values of column c start at c*Rows, row 0
// being the lowest frequency.
type Spectrogram struct {
	Columns int
	Rows    int
	Data    []float64

	// Times holds the center of each column's window in seconds.
	Times []float64
	// Frequencies holds the frequency in Hz of each row, ascending.
	Frequencies []float64

	MinDB      float64
	MaxDB      float64
	SampleRate int
}

// At returns the intensity at column col and row row.
func (s *Spectrogram) At(col, row int) float64 {
	return s.Data[col*s.Rows+row]
}

// Column returns the Rows values of column col. The slice aliases Data.
func (s *Spectrogram) Column(col int) []float64 {
	return s.Data[col*s.Rows : (col+1)*s.Rows]
}

// Normalized returns the intensity at (col, row) mapped linearly from
// [MinDB, MaxDB] to [0, 1].
func (s *Spectrogram) Normalized(col, row int) float64 {
	return (s.At(col, row) - s.MinDB) / (s.MaxDB - s.MinDB)
}

func (s *Spectrogram) String() string {
	return fmt.Sprintf("Spectrogram(%dx%d, %g..%g Hz, %g..%g dB)",
		s.Columns, s.Rows, s.Frequencies[0], s.Frequencies[len(s.Frequencies)-1], s.MinDB, s.MaxDB)
}
