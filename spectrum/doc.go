// Package spectrum provides power spectral density estimation for the
// RR-interval series: a plain FFT half-spectrum, the periodogram, and
// Welch's method, plus banded power integration.
//
// All estimators return one-sided spectra with frequencies in Hz.
package spectrum
