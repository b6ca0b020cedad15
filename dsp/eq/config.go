package eq

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/fourier"
)

// EdgePolicy selects the upper edge of the last band.
type EdgePolicy int

const (
	// EdgeFixed keeps the catalog's constant upper edge; bins above it stay
	// at unity gain.
	EdgeFixed EdgePolicy = iota
	// EdgeNyquist extends the last band through the signal's Nyquist bin.
	EdgeNyquist
)

func (p EdgePolicy) String() string {
	if p == EdgeNyquist {
		return "nyquist"
	}
	return "fixed"
}

// ParseEdgePolicy maps "fixed" or "nyquist" to a policy.
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed", "":
		return EdgeFixed, nil
	case "nyquist":
		return EdgeNyquist, nil
	default:
		return EdgeFixed, fmt.Errorf("eq: unknown edge policy %q", name)
	}
}

// Config holds equalizer settings.
type Config struct {
	Catalog    Catalog
	EdgePolicy EdgePolicy
	Backend    fourier.Backend
}

// Bands returns the catalog with the edge policy applied: under
// EdgeNyquist the last band's High is +Inf.
func (c Config) Bands() Catalog {
	out := append(Catalog(nil), c.Catalog...)
	if c.EdgePolicy == EdgeNyquist && len(out) > 0 {
		out[len(out)-1].High = math.Inf(1)
	}
	return out
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the five-band catalog, fixed upper edge and the
// default transform backend.
func DefaultConfig() Config {
	return Config{
		Catalog:    DefaultCatalog(),
		EdgePolicy: EdgeFixed,
		Backend:    fourier.Default(),
	}
}

// WithCatalog replaces the band catalog. Empty catalogs are ignored.
func WithCatalog(c Catalog) Option {
	return func(cfg *Config) {
		if len(c) > 0 {
			cfg.Catalog = append(Catalog(nil), c...)
		}
	}
}

// WithEdgePolicy sets the upper-edge policy of the last band.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(cfg *Config) {
		cfg.EdgePolicy = p
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
