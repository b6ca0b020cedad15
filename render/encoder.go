package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-eq/dsp/spectrogram"
)

// Encoder writes a spectrogram as an image.
type Encoder interface {
	Encode(w io.Writer, s *spectrogram.Spectrogram) error
}

// Options controls rasterization.
type Options struct {
	// Width and Height of the output in pixels; 0 keeps the grid size.
	Width  int
	Height int

	Gradient     Gradient
	Transparent  bool
	Interpolator draw.Interpolator
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 1200x400 inferno image, the size of a 12x4 inch
// figure at 100 dpi.
func DefaultOptions() Options {
	return Options{
		Width:        1200,
		Height:       400,
		Gradient:     Inferno(),
		Interpolator: draw.BiLinear,
	}
}

// WithSize sets the output size. Non-positive values keep the grid size on
// that axis.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = max(width, 0)
		o.Height = max(height, 0)
	}
}

// WithGradient sets the color map. Empty gradients are ignored.
func WithGradient(g Gradient) Option {
	return func(o *Options) {
		if len(g) > 0 {
			o.Gradient = g
		}
	}
}

// WithTransparentFloor makes cells at the dB floor transparent.
func WithTransparentFloor() Option {
	return func(o *Options) {
		o.Transparent = true
	}
}

// WithInterpolator sets the resampling kernel used for resizing.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *Options) {
		if i != nil {
			o.Interpolator = i
		}
	}
}

// ApplyOptions applies zero or more options to the defaults.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Image rasterizes s and rescales it to the configured size.
func (o Options) Image(s *spectrogram.Spectrogram) (image.Image, error) {
	if s == nil || s.Columns <= 0 || s.Rows <= 0 || len(s.Data) != s.Columns*s.Rows {
		return nil, fmt.Errorf("%w: malformed grid", spectrogram.ErrRenderFailure)
	}

	src := ToImage(s, o.Gradient, o.Transparent)

	w, h := o.Width, o.Height
	if w == 0 {
		w = s.Columns
	}
	if h == 0 {
		h = s.Rows
	}
	if w == s.Columns && h == s.Rows {
		return src, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	o.Interpolator.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// PNGEncoder encodes spectrograms as PNG.
type PNGEncoder struct {
	opts Options
}

// NewPNGEncoder creates a PNG encoder from the defaults and opts.
func NewPNGEncoder(opts ...Option) *PNGEncoder {
	return &PNGEncoder{opts: ApplyOptions(opts...)}
}

// Encode implements [Encoder].
func (e *PNGEncoder) Encode(w io.Writer, s *spectrogram.Spectrogram) error {
	img, err := e.opts.Image(s)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: png: %v", spectrogram.ErrRenderFailure, err)
	}
	return nil
}
