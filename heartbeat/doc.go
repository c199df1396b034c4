// Package heartbeat implements the noise-resistant heart-rate analysis
// pipeline: rolling-baseline peak detection with a self-tuning threshold
// grid, RR-interval quality control, and time-domain, frequency-domain and
// breathing-rate measure calculation.
//
// A single call drives the whole pipeline:
//
//	measures, err := heartbeat.Process(ctx, samples, 100.0, heartbeat.DefaultOptions())
//
// Each run owns a private Context; concurrent runs over different signals
// are independent.
package heartbeat
