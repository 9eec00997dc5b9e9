package isqrt

import "errors"

// Errors returned by layout validation and checked evaluation.
var (
	ErrWidth         = errors.New("isqrt: input width must be in [1, 32] bits")
	ErrSegmentWidth  = errors.New("isqrt: segment width must be in [1, 16] bits")
	ErrLowOffset     = errors.New("isqrt: low segment must start at bit 0")
	ErrOffsetOrder   = errors.New("isqrt: segment offsets must decrease from high to low")
	ErrTopCoverage   = errors.New("isqrt: high segment must end at the input width")
	ErrOverlap       = errors.New("isqrt: adjacent segments must overlap by 1 or 2 bits")
	ErrOverrideCount = errors.New("isqrt: override count out of table range")
	ErrPassMask      = errors.New("isqrt: pass mask does not cover the result width")
	ErrOutOfRange    = errors.New("isqrt: input exceeds layout width")
)
