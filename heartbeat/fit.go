package heartbeat

import (
	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/logger"
)

// raiseCandidates is the fixed grid of baseline raise percentages tried by
// the fit, in scan order.
var raiseCandidates = []float64{
	5, 10, 15, 20, 25, 30, 40, 50, 60, 70,
	80, 90, 100, 110, 120, 150, 200, 300,
}

// FitPeaks scans the raise-percentage grid, keeps the candidates whose RR
// standard deviation exceeds 0.1 ms and whose implied heart rate falls in
// [bpmMin, bpmMax], and settles on the candidate with the smallest RR
// standard deviation (first seen wins on ties). The context is left
// populated with the winning detection.
//
// When no candidate survives the filter, the signal has no stable
// detection threshold and a NoStableThreshold error is returned.
func FitPeaks(c *Context, bpmMin, bpmMax float64, log *logger.Logger) error {
	type candidate struct {
		raise float64
		rrsd  float64
		bpm   float64
	}

	best := candidate{rrsd: -1}
	for _, raise := range raiseCandidates {
		c.detect(raise)
		bpm := float64(len(c.Peaks)) / c.duration() * 60

		if log != nil {
			log.Debug("fit candidate", logger.Fields(
				"raise_pct", raise, "peaks", len(c.Peaks),
				"rrsd", c.RRStdDev, "bpm", bpm,
			))
		}

		if c.RRStdDev > 0.1 && bpm >= bpmMin && bpm <= bpmMax {
			if best.rrsd < 0 || c.RRStdDev < best.rrsd {
				best = candidate{raise: raise, rrsd: c.RRStdDev, bpm: bpm}
			}
		}
	}

	if best.rrsd < 0 {
		return errors.NoStableThreshold(bpmMin, bpmMax)
	}

	c.detect(best.raise)
	c.BestRaise = best.raise

	if log != nil {
		log.Debug("fit settled", logger.Fields(
			"raise_pct", best.raise, "rrsd", best.rrsd, "bpm", best.bpm,
		))
	}
	return nil
}
