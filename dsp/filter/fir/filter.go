package fir

import (
	"math"
	"math/cmplx"
)

// DefaultBandpass is a 9-tap bandpass with normalized edges 0.18 and 0.33
// (scipy firwin(9, [0.18, 0.33], pass_zero=False)).
var DefaultBandpass = []float64{
	-0.03138033, -0.06681294, -0.00748198, 0.27316121, 0.45786652,
	0.27316121, -0.00748198, -0.06681294, -0.03138033,
}

// Filter is an immutable FIR tap set.
type Filter struct {
	coeffs []float64
}

// New creates a filter from the given taps. The taps are copied.
func New(coeffs []float64) *Filter {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Filter{coeffs: c}
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter taps.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response at the given frequency
// (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
