package signal

import (
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// Hampel applies a median-absolute-deviation outlier filter. For each
// interior sample the median and MAD of a symmetric window of
// windowSamples neighbours are computed over the evolving output; samples
// exceeding median + 3*MAD are replaced with the window median. Samples
// within half a window of either boundary are left unmodified.
func Hampel(data []float64, windowSamples int) []float64 {
	out := append([]float64(nil), data...)
	oneSided := windowSamples / 2
	if oneSided < 1 {
		return out
	}
	for i := oneSided; i < len(out)-oneSided; i++ {
		window := out[i-oneSided : i+oneSided+1]
		median := stats.Median(window)
		mad := stats.MAD(window)
		if out[i] > median+3*mad {
			out[i] = median
		}
	}
	return out
}

// HampelCorrect subtracts a large-window Hampel median filter from the
// signal, suppressing slow noise at the cost of a full filter pass. The
// window spans one second of samples.
func HampelCorrect(data []float64, sampleRate float64) []float64 {
	filtered := Hampel(data, int(sampleRate))
	out := make([]float64, len(data))
	for i := range data {
		out[i] = data[i] - filtered[i]
	}
	return out
}
