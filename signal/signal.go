package signal

import (
	"github.com/ubcspin/REMO1-dataProcessing/errors"
)

// Signal is a single-channel voltage trace with its sampling rate in Hz.
type Signal struct {
	Samples    []float64 `json:"samples"`
	SampleRate float64   `json:"sample_rate"`
}

// Validate checks the basic input contract: at least two samples and a
// positive sampling rate.
func (s Signal) Validate() error {
	if len(s.Samples) < 2 {
		return errors.InsufficientData("signal", 2, len(s.Samples))
	}
	if s.SampleRate <= 0 {
		return errors.InvalidInput("sample_rate", "must be positive")
	}
	return nil
}

// Duration returns the signal length in seconds.
func (s Signal) Duration() float64 {
	return float64(len(s.Samples)) / s.SampleRate
}
