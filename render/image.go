package render

import (
	"image"
	"image/color"

	"github.com/cwbudde/algo-eq/dsp/spectrogram"
)

// ToImage rasterizes s at one pixel per cell: x is the column, y the row
// with the lowest frequency at the bottom. Cells at the dB floor become
// fully transparent when transparent is set.
func ToImage(s *spectrogram.Spectrogram, g Gradient, transparent bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Columns, s.Rows))
	for c := 0; c < s.Columns; c++ {
		for r := 0; r < s.Rows; r++ {
			var px color.NRGBA
			if transparent && s.At(c, r) <= s.MinDB {
				px = color.NRGBA{}
			} else {
				px = g.At(s.Normalized(c, r))
			}
			img.SetNRGBA(c, s.Rows-1-r, px)
		}
	}
	return img
}
