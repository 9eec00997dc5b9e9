// Package fir evaluates the frequency response of FIR filters given by
// their taps.
//
// For a tap set h[0..M-1] the response at frequency f and sample rate fs is
//
//	H(f) = sum_{m=0}^{M-1} h[m] * exp(-j*2*pi*(f/fs)*m)
//
// [Filter.MagnitudeResponse] samples |H| at n evenly spaced frequencies
// k*fs/n by direct summation, which works for any n.
// [Filter.MagnitudeResponseFFT] computes the same points with one
// zero-padded FFT and requires n to be a power of two no shorter than the
// filter.
//
// Designing the taps is out of scope; [DefaultBandpass] is a fixed 9-tap
// bandpass used by the firresp command.
package fir
