package window

import "errors"

var (
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
	errUnknownType      = errors.New("window: unknown window type")
)
