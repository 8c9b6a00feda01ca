package fft

import "errors"

// ErrInvalidLength is returned when a signal's length is not 2^order for the
// supplied order. It is the only failure mode of the transform engine.
var ErrInvalidLength = errors.New("fft: invalid signal length")
