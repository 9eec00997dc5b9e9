package fir

import "errors"

// Errors returned by response evaluation.
var (
	ErrEmptyTaps  = errors.New("fir: filter has no taps")
	ErrPoints     = errors.New("fir: point count must be positive")
	ErrFFTPoints  = errors.New("fir: FFT point count must be a power of two no shorter than the filter")
	ErrSampleRate = errors.New("fir: sample rate must be positive")
)
