package heartbeat

import (
	"github.com/ubcspin/REMO1-dataProcessing/signal"
)

// Context is the mutable working state threaded through the pipeline
// stages of one run. It is created at pipeline start, populated stage by
// stage, and discarded once the Measures record has been extracted. A
// Context must never be shared between runs.
type Context struct {
	// Signal holds the (possibly preprocessed) input samples.
	Signal []float64
	// SampleRate is the sampling rate in Hz.
	SampleRate float64
	// Baseline is the rolling-mean baseline, same length as Signal.
	Baseline []float64

	// Peaks holds detected peak sample indices, strictly increasing.
	Peaks []int
	// Amplitudes holds the signal value at each peak.
	Amplitudes []float64
	// BestRaise is the winning baseline raise percentage from the fit.
	BestRaise float64

	// RR holds inter-peak intervals in milliseconds.
	RR []float64
	// RRDiff holds absolute successive RR differences.
	RRDiff []float64
	// RRSqDiff holds squared successive RR differences.
	RRSqDiff []float64
	// RRStdDev is the standard deviation of RR, +Inf when RR is empty.
	RRStdDev float64

	// Mask marks each peak as accepted (1) or rejected (0).
	Mask []int
	// CorrectedRR holds the RR intervals whose both endpoints are accepted.
	CorrectedRR []float64
	// RejectedPeaks and RejectedAmplitudes record the rejected peaks.
	RejectedPeaks      []int
	RejectedAmplitudes []float64
	// RejectedSegments records sample spans zeroed by segment-wise rejection.
	RejectedSegments []signal.Segment
}

// NewContext creates the working state for one pipeline run.
func NewContext(data []float64, sampleRate float64) *Context {
	return &Context{
		Signal:     data,
		SampleRate: sampleRate,
	}
}

// duration returns the signal length in seconds.
func (c *Context) duration() float64 {
	return float64(len(c.Signal)) / c.SampleRate
}
