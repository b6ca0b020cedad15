package eq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// ErrInvalidGain is returned for non-finite gains or gains addressed to a
// band that does not exist in the catalog.
var ErrInvalidGain = errors.New("eq: invalid gain")

// Profile maps band names to gains in dB. Bands without an entry get 0 dB.
// A Profile is immutable; the zero value is the flat profile.
type Profile struct {
	gains map[string]float64
}

// NewProfile copies gains into a new Profile.
func NewProfile(gains map[string]float64) Profile {
	p := Profile{gains: make(map[string]float64, len(gains))}
	for name, db := range gains {
		p.gains[name] = db
	}
	return p
}

// ParseProfile decodes a JSON object such as {"60Hz": 3, "16kHz": -6}.
func ParseProfile(data []byte) (Profile, error) {
	var gains map[string]float64
	if err := json.Unmarshal(data, &gains); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidGain, err)
	}
	return NewProfile(gains), nil
}

// Gain returns the gain in dB for band and whether it was set.
func (p Profile) Gain(band string) (float64, bool) {
	db, ok := p.gains[band]
	return db, ok
}

// Len returns the number of explicit entries.
func (p Profile) Len() int { return len(p.gains) }

// Bands returns the names with an explicit entry, sorted.
func (p Profile) Bands() []string {
	out := make([]string, 0, len(p.gains))
	for name := range p.gains {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the profile as a JSON object.
func (p Profile) MarshalJSON() ([]byte, error) {
	if p.gains == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.gains)
}

// Validate checks every entry against catalog.
func (p Profile) Validate(catalog Catalog) error {
	for _, name := range p.Bands() {
		db := p.gains[name]
		if !core.IsFinite(db) {
			return fmt.Errorf("%w: band %q has non-finite gain %v", ErrInvalidGain, name, db)
		}
		if _, ok := catalog.Lookup(name); !ok {
			return fmt.Errorf("%w: unknown band %q", ErrInvalidGain, name)
		}
	}
	return nil
}
