// Package signal provides the raw-signal conditioning stages that run
// before peak detection: amplitude scaling, iterative peak accentuation,
// clipping-segment detection and spline repair, polarity flipping, Hampel
// outlier smoothing, and the rolling-mean baseline.
//
// All functions return new slices; the input signal is never modified.
package signal
