package fir

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Frequencies returns the n evaluation frequencies k*sampleRate/n.
func Frequencies(n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrPoints
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrSampleRate, sampleRate)
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = sampleRate / float64(n) * float64(k)
	}

	return out, nil
}

// MagnitudeResponse returns |H| at the n frequencies k*fs/n by direct
// summation. The result does not depend on fs.
func (f *Filter) MagnitudeResponse(n int) ([]float64, error) {
	if len(f.coeffs) == 0 {
		return nil, ErrEmptyTaps
	}

	if n <= 0 {
		return nil, ErrPoints
	}

	re := make([]float64, n)
	im := make([]float64, n)

	for k := range n {
		w := 2 * math.Pi * float64(k) / float64(n)
		var hi, hq float64
		for m, c := range f.coeffs {
			s, co := math.Sincos(w * float64(m))
			hi += c * co
			hq -= c * s
		}
		re[k], im[k] = hi, hq
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// MagnitudeResponseFFT returns the same points as MagnitudeResponse using
// a zero-padded FFT of the taps.
func (f *Filter) MagnitudeResponseFFT(n int) ([]float64, error) {
	if len(f.coeffs) == 0 {
		return nil, ErrEmptyTaps
	}

	if n < len(f.coeffs) || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: n=%d, taps=%d", ErrFFTPoints, n, len(f.coeffs))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, c := range f.coeffs {
		in[i] = complex(c, 0)
	}

	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("fir: forward FFT: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for k, v := range bins {
		re[k], im[k] = real(v), imag(v)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out, nil
}
