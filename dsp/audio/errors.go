package audio

import "errors"

var (
	// ErrUnsupportedEncoding is returned when a raw buffer uses an encoding
	// that cannot be interpreted at all.
	ErrUnsupportedEncoding = errors.New("audio: unsupported sample encoding")
	// ErrInvalidSignal is returned for empty signals or non-positive sample
	// rates passed to transform-based operations.
	ErrInvalidSignal = errors.New("audio: invalid signal")
)
