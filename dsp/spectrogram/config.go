package spectrogram

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/fourier"
	"github.com/cwbudde/algo-eq/dsp/window"
)

var (
	// ErrRenderFailure is returned when computing the grid fails.
	ErrRenderFailure = errors.New("spectrogram: render failure")
	// ErrInvalidConfig is returned for inconsistent analysis settings.
	ErrInvalidConfig = errors.New("spectrogram: invalid config")
)

// Config holds analysis and axis settings.
type Config struct {
	WindowSize int
	Overlap    int
	Window     window.Type

	MinDB float64
	MaxDB float64

	LinThresh float64
	LinScale  float64
	MinFreq   float64
	// MaxFreq caps the displayed range; 0 means the Nyquist frequency.
	MaxFreq float64
	Rows    int

	Backend fourier.Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented display settings.
func DefaultConfig() Config {
	return Config{
		WindowSize: 1024,
		Overlap:    512,
		Window:     window.TypeHann,
		MinDB:      -90,
		MaxDB:      0,
		LinThresh:  700,
		LinScale:   1,
		MinFreq:    20,
		Rows:       512,
		Backend:    fourier.Default(),
	}
}

// WithWindow sets the analysis window length and the overlap between
// consecutive windows, both in samples.
func WithWindow(size, overlap int) Option {
	return func(cfg *Config) {
		if size > 0 && overlap >= 0 && overlap < size {
			cfg.WindowSize = size
			cfg.Overlap = overlap
		}
	}
}

// WithWindowType sets the taper applied to each frame.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithDBRange sets the clamping range in dB.
func WithDBRange(minDB, maxDB float64) Option {
	return func(cfg *Config) {
		if minDB < maxDB {
			cfg.MinDB = minDB
			cfg.MaxDB = maxDB
		}
	}
}

// WithLinThresh sets the symmetric-log linear threshold in Hz.
func WithLinThresh(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.LinThresh = hz
		}
	}
}

// WithFrequencyRange sets the displayed range. maxHz == 0 selects Nyquist.
func WithFrequencyRange(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		if minHz >= 0 && (maxHz == 0 || maxHz > minHz) {
			cfg.MinFreq = minHz
			cfg.MaxFreq = maxHz
		}
	}
}

// WithRows sets the number of output frequency rows.
func WithRows(rows int) Option {
	return func(cfg *Config) {
		if rows > 0 {
			cfg.Rows = rows
		}
	}
}

// WithBackend sets the transform backend. nil is ignored.
func WithBackend(b fourier.Backend) Option {
	return func(cfg *Config) {
		if b != nil {
			cfg.Backend = b
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Hop returns the distance in samples between window starts.
func (c Config) Hop() int { return c.WindowSize - c.Overlap }

// Columns returns the number of time columns for an n-sample signal.
func (c Config) Columns(n int) int {
	if n <= c.WindowSize {
		return 1
	}
	return (n-c.WindowSize)/c.Hop() + 1
}

// Validate reports ErrInvalidConfig for unusable settings.
func (c Config) Validate() error {
	switch {
	case c.WindowSize <= 0:
		return fmt.Errorf("%w: window size must be > 0: %d", ErrInvalidConfig, c.WindowSize)
	case c.Overlap < 0 || c.Overlap >= c.WindowSize:
		return fmt.Errorf("%w: overlap must be in [0, %d): %d", ErrInvalidConfig, c.WindowSize, c.Overlap)
	case !(c.MinDB < c.MaxDB):
		return fmt.Errorf("%w: dB range [%g, %g] is empty", ErrInvalidConfig, c.MinDB, c.MaxDB)
	case c.LinThresh <= 0 || c.LinScale <= 0:
		return fmt.Errorf("%w: symlog threshold and scale must be > 0", ErrInvalidConfig)
	case c.MinFreq < 0:
		return fmt.Errorf("%w: min frequency must be >= 0: %g", ErrInvalidConfig, c.MinFreq)
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be > 0: %d", ErrInvalidConfig, c.Rows)
	case c.Backend == nil:
		return fmt.Errorf("%w: no transform backend", ErrInvalidConfig)
	}
	return nil
}
