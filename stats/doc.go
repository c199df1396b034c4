// Package stats provides descriptive statistics over float64 slices for
// the analysis pipeline: moments, robust dispersion (median, MAD,
// percentiles), successive differences, and trapezoidal integration.
//
// Empty-input behaviour follows the pipeline's degradation policy: values
// that would require a division by zero are reported as NaN, never as a
// panic.
package stats
