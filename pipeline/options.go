package pipeline

import (
	"github.com/pion/logging"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/spectrogram"
	"github.com/cwbudde/algo-eq/render"
)

type options struct {
	eq          []eq.Option
	spectrogram []spectrogram.Option
	encoder     render.Encoder
	loggers     logging.LoggerFactory
}

// Option configures a Pipeline.
type Option func(*options)

// WithEqualizer appends equalizer options.
func WithEqualizer(opts ...eq.Option) Option {
	return func(o *options) {
		o.eq = append(o.eq, opts...)
	}
}

// WithSpectrogram appends spectrogram options.
func WithSpectrogram(opts ...spectrogram.Option) Option {
	return func(o *options) {
		o.spectrogram = append(o.spectrogram, opts...)
	}
}

// WithEncoder sets the image encoder. A nil encoder disables encoding.
func WithEncoder(e render.Encoder) Option {
	return func(o *options) {
		o.encoder = e
	}
}

// WithLoggerFactory sets the logger source.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(o *options) {
		o.loggers = f
	}
}

func applyOptions(opts ...Option) options {
	o := options{encoder: render.NewPNGEncoder()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
