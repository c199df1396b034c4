package signal

import (
	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// Default amplitude range used throughout the pipeline; a 10-bit ADC scale.
const (
	ScaleLo = 0.0
	ScaleHi = 1024.0
)

// Scale linearly rescales data into [lo, hi]. A constant signal cannot be
// rescaled and yields a DegenerateSignal error.
func Scale(data []float64, lo, hi float64) ([]float64, error) {
	min := stats.Min(data)
	max := stats.Max(data)
	if max == min {
		return nil, errors.DegenerateSignal().WithDetail("value", min)
	}
	out := make([]float64, len(data))
	span := max - min
	for i, v := range data {
		out[i] = lo + (hi-lo)*(v-min)/span
	}
	return out, nil
}

// EnhancePeaks accentuates the highest peaks by repeated squaring and
// rescaling: peaks grow faster than baseline under each squaring pass.
// With iterations == 0 the scaled signal is returned unchanged.
func EnhancePeaks(data []float64, iterations int) ([]float64, error) {
	out, err := Scale(data, ScaleLo, ScaleHi)
	if err != nil {
		return nil, err
	}
	for i := 0; i < iterations; i++ {
		for j, v := range out {
			out[j] = v * v
		}
		out, err = Scale(out, ScaleLo, ScaleHi)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FlipPolarity mirrors a signal with negative peaks around its mean,
// turning inverted sensor output into a normal positive-peaked trace.
func FlipPolarity(data []float64) []float64 {
	mean := stats.Mean(data)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = (mean - v) + mean
	}
	return out
}
