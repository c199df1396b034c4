package signal

import (
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// RollingMean computes the moving-average baseline of data over a window
// of windowSeconds*sampleRate samples (at least one). The valid
// convolution is shorter than the signal by windowLen-1 samples; the
// deficit is padded with the signal's global mean, split evenly between
// both ends. A remaining off-by-one is resolved by appending a trailing
// zero (one short) or dropping the last sample (one long); this parity
// policy is deliberate and must not change, downstream detection output
// depends on it byte for byte.
func RollingMean(data []float64, windowSeconds, sampleRate float64) []float64 {
	windowLen := int(windowSeconds * sampleRate)
	if windowLen < 1 {
		windowLen = 1
	}
	if windowLen > len(data) {
		windowLen = len(data)
	}

	valid := make([]float64, len(data)-windowLen+1)
	sum := 0.0
	for i := 0; i < windowLen; i++ {
		sum += data[i]
	}
	valid[0] = sum / float64(windowLen)
	for i := 1; i < len(valid); i++ {
		sum += data[i+windowLen-1] - data[i-1]
		valid[i] = sum / float64(windowLen)
	}

	mean := stats.Mean(data)
	missing := (len(data) - len(valid)) / 2

	out := make([]float64, 0, len(valid)+2*missing+1)
	for i := 0; i < missing; i++ {
		out = append(out, mean)
	}
	out = append(out, valid...)
	for i := 0; i < missing; i++ {
		out = append(out, mean)
	}

	if len(out) < len(data) {
		out = append(out, 0)
	} else if len(out) > len(data) {
		out = out[:len(out)-1]
	}
	return out
}
