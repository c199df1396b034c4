package heartbeat

import (
	"math"

	"github.com/ubcspin/REMO1-dataProcessing/interp"
	"github.com/ubcspin/REMO1-dataProcessing/signal"
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// breathingUpsample is the spline upsampling factor for the RR series.
const breathingUpsample = 10

// CalcBreathing estimates the respiration rate from the corrected RR
// series. The series is upsampled 10x through a cubic spline and peak
// detection is re-run over the upsampled curve against a rolling baseline;
// the breathing rate is the peak count divided by the signal duration.
//
// The rolling-mean call assumes a 100 Hz rate for the upsampled series
// regardless of the true upsampling factor, matching the reference tool
// (see DESIGN.md). Fewer than two breathing peaks yield NaN instead of an
// error: breathing is a best-effort measure.
func CalcBreathing(c *Context) float64 {
	rr := c.CorrectedRR
	if len(rr) < 4 {
		return math.NaN()
	}

	knots := stats.Linspace(0, float64(len(rr)), len(rr))
	grid := stats.Linspace(0, float64(len(rr)), len(rr)*breathingUpsample)
	upsampled, err := interp.Resample(knots, rr, grid)
	if err != nil {
		return math.NaN()
	}

	baseline := signal.RollingMean(upsampled, 0.75, 100.0)
	peaks, _ := DetectPeaks(upsampled, baseline, 1)
	if len(peaks) < 2 {
		return math.NaN()
	}
	return float64(len(peaks)) / c.duration()
}
