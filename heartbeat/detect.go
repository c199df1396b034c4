package heartbeat

import (
	"math"

	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// DetectPeaks finds local maxima above the baseline raised by raisePercent
// percent. Samples exceeding the raised baseline are grouped into
// contiguous runs (a gap of more than one sample breaks a run) and each
// run contributes the index of its largest sample; ties keep the first
// occurrence. Empty runs cannot occur: a run exists only if at least one
// sample crossed the baseline.
//
// The function is pure and is reused by the breathing estimator without
// touching any pipeline state.
func DetectPeaks(data, baseline []float64, raisePercent float64) ([]int, []float64) {
	factor := 1 + raisePercent/100
	var peaks []int
	var amplitudes []float64

	runStart := -1
	runBest := -1
	flush := func() {
		if runStart >= 0 {
			peaks = append(peaks, runBest)
			amplitudes = append(amplitudes, data[runBest])
			runStart = -1
		}
	}

	for i := range data {
		if data[i] > baseline[i]*factor {
			if runStart < 0 {
				runStart = i
				runBest = i
			} else if data[i] > data[runBest] {
				runBest = i
			}
			continue
		}
		flush()
	}
	flush()
	return peaks, amplitudes
}

// detect runs peak detection at the given raise percentage and refreshes
// the context's peak and RR state, including the fit diagnostic RRStdDev.
func (c *Context) detect(raisePercent float64) {
	c.Peaks, c.Amplitudes = DetectPeaks(c.Signal, c.Baseline, raisePercent)
	c.CalcRR()
	if len(c.RR) > 0 {
		c.RRStdDev = stats.Std(c.RR)
	} else {
		c.RRStdDev = math.Inf(1)
	}
}
