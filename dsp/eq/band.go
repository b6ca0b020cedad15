package eq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// ErrInvalidCatalog is returned for empty, overlapping or non-contiguous
// band catalogs.
var ErrInvalidCatalog = errors.New("eq: invalid band catalog")

// Band is a named frequency interval [Low, High) in Hz.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Contains reports whether freqHz lies in [Low, High).
func (b Band) Contains(freqHz float64) bool {
	return freqHz >= b.Low && freqHz < b.High
}

// Catalog is an ordered list of contiguous, non-overlapping bands.
type Catalog []Band

// DefaultCatalog returns the five-band table.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "60Hz", Low: 0, High: 150},
		{Name: "250Hz", Low: 150, High: 600},
		{Name: "1kHz", Low: 600, High: 2500},
		{Name: "4kHz", Low: 2500, High: 10000},
		{Name: "16kHz", Low: 10000, High: 22050},
	}
}

// Validate checks that bands are non-empty, start at a non-negative
// frequency, have unique names and each band starts where the previous one
// ends. Edges are compared with a relative tolerance of 1e-12 so that
// computed boundaries such as 0.1+0.2 and 0.3 still meet.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidCatalog)
	}
	if c[0].Low < 0 {
		return fmt.Errorf("%w: band %q starts below 0 Hz", ErrInvalidCatalog, c[0].Name)
	}

	seen := make(map[string]struct{}, len(c))
	for i, b := range c {
		if b.Name == "" {
			return fmt.Errorf("%w: band %d has no name", ErrInvalidCatalog, i)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate band %q", ErrInvalidCatalog, b.Name)
		}
		seen[b.Name] = struct{}{}

		if !(b.High > b.Low) {
			return fmt.Errorf("%w: band %q has empty range [%g, %g)", ErrInvalidCatalog, b.Name, b.Low, b.High)
		}
		if i > 0 && !core.NearlyEqual(b.Low, c[i-1].High, 0) {
			return fmt.Errorf("%w: band %q starts at %g, previous ends at %g", ErrInvalidCatalog, b.Name, b.Low, c[i-1].High)
		}
	}
	return nil
}

// Lookup returns the band with the given name.
func (c Catalog) Lookup(name string) (Band, bool) {
	for _, b := range c {
		if b.Name == name {
			return b, true
		}
	}
	return Band{}, false
}

// Names returns band names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, b := range c {
		out[i] = b.Name
	}
	return out
}
