package spectrum

import (
	"math"

	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	// Freqs holds the frequency grid in Hz.
	Freqs []float64
	// Power holds the (non-negative) power at each frequency.
	Power []float64
}

// HalfSpectrum returns the squared-magnitude half spectrum of x scaled by
// 1/N, matching the plain-FFT estimation variant: Y = FFT(x)/N, first N/2
// bins, power |Y|^2.
func HalfSpectrum(x []float64, fs float64) PSD {
	n := len(x)
	if n == 0 {
		return PSD{}
	}
	spec := FFTReal(x)
	half := n / 2
	freqs := make([]float64, half)
	power := make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * fs / float64(n)
		re := real(spec[k]) / float64(n)
		im := imag(spec[k]) / float64(n)
		power[k] = re*re + im*im
	}
	return PSD{Freqs: freqs, Power: power}
}

// Periodogram estimates the PSD with a boxcar window and constant
// detrending: power[k] = |X[k]|^2 / (fs*N), one-sided with interior bins
// doubled.
func Periodogram(x []float64, fs float64) PSD {
	n := len(x)
	if n == 0 {
		return PSD{}
	}
	detrended := subtractMean(x)
	spec := FFTReal(detrended)
	return onesided(spec, n, fs, fs*float64(n))
}

// Welch estimates the PSD by averaging modified periodograms over
// half-overlapping Hann-windowed segments of length nperseg. A nperseg
// larger than the signal is clamped to the signal length.
func Welch(x []float64, fs float64, nperseg int) PSD {
	n := len(x)
	if n == 0 {
		return PSD{}
	}
	if nperseg > n || nperseg <= 0 {
		nperseg = n
	}

	window := hann(nperseg)
	winSumSq := 0.0
	for _, w := range window {
		winSumSq += w * w
	}

	step := nperseg / 2
	if step == 0 {
		step = 1
	}

	half := nperseg/2 + 1
	acc := make([]float64, half)
	segments := 0
	for start := 0; start+nperseg <= n; start += step {
		seg := subtractMean(x[start : start+nperseg])
		for i := range seg {
			seg[i] *= window[i]
		}
		spec := FFTReal(seg)
		for k := 0; k < half; k++ {
			re, im := real(spec[k]), imag(spec[k])
			acc[k] += re*re + im*im
		}
		segments++
	}
	if segments == 0 {
		return PSD{}
	}

	scale := 1 / (fs * winSumSq * float64(segments))
	freqs := make([]float64, half)
	power := make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * fs / float64(nperseg)
		p := acc[k] * scale
		if k != 0 && !(nperseg%2 == 0 && k == half-1) {
			p *= 2
		}
		power[k] = p
	}
	return PSD{Freqs: freqs, Power: power}
}

// BandPower integrates |power| over the inclusive frequency band [lo, hi]
// using the trapezoidal rule over the selected bins.
func BandPower(p PSD, lo, hi float64) float64 {
	var band []float64
	for i, f := range p.Freqs {
		if f >= lo && f <= hi {
			band = append(band, math.Abs(p.Power[i]))
		}
	}
	return stats.Trapezoid(band)
}

func onesided(spec []complex128, n int, fs, denom float64) PSD {
	half := n/2 + 1
	freqs := make([]float64, half)
	power := make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * fs / float64(n)
		re, im := real(spec[k]), imag(spec[k])
		p := (re*re + im*im) / denom
		if k != 0 && !(n%2 == 0 && k == half-1) {
			p *= 2
		}
		power[k] = p
	}
	return PSD{Freqs: freqs, Power: power}
}

func subtractMean(x []float64) []float64 {
	mean := stats.Mean(x)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - mean
	}
	return out
}

// hann returns a periodic Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
