package heartbeat

import (
	"math"

	"github.com/ubcspin/REMO1-dataProcessing/signal"
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// CalcRR derives the RR interval series from the detected peaks. A first
// peak within 150 ms of signal start is dropped together with its
// amplitude: the recording likely starts mid-beat and the truncated first
// interval would be an artifact. RRDiff and RRSqDiff are refreshed along
// with RR.
func (c *Context) CalcRR() {
	if len(c.Peaks) > 0 && float64(c.Peaks[0]) <= c.SampleRate/1000*150 {
		c.Peaks = c.Peaks[1:]
		c.Amplitudes = c.Amplitudes[1:]
	}

	if len(c.Peaks) < 2 {
		c.RR, c.RRDiff, c.RRSqDiff = nil, nil, nil
		return
	}
	rr := make([]float64, len(c.Peaks)-1)
	for i := 1; i < len(c.Peaks); i++ {
		rr[i-1] = float64(c.Peaks[i]-c.Peaks[i-1]) / c.SampleRate * 1000
	}
	c.RR = rr
	c.RRDiff = stats.AbsDiff(rr)
	c.RRSqDiff = stats.Square(c.RRDiff)
}

// CheckPeaks rejects peaks whose RR interval is implausible. Thresholds
// are meanRR ± max(300 ms, 30% of meanRR); the peak ending an interval
// outside the open threshold range is rejected. The very first peak has no
// preceding interval and is always accepted. Optionally applies
// segment-wise rejection before rebuilding the corrected RR series.
func (c *Context) CheckPeaks(rejectSegmentwise bool, maxRejects int) {
	meanRR := stats.Mean(c.RR)
	margin := 0.3 * meanRR
	if margin < 300 {
		margin = 300
	}
	upper := meanRR + margin
	lower := meanRR - margin

	mask := make([]int, len(c.Peaks))
	c.RejectedPeaks = nil
	c.RejectedAmplitudes = nil
	if len(mask) > 0 {
		mask[0] = 1
	}
	for i, rr := range c.RR {
		if rr > lower && rr < upper {
			mask[i+1] = 1
		} else {
			mask[i+1] = 0
			c.RejectedPeaks = append(c.RejectedPeaks, c.Peaks[i+1])
			c.RejectedAmplitudes = append(c.RejectedAmplitudes, c.Amplitudes[i+1])
		}
	}
	c.Mask = mask

	if rejectSegmentwise {
		c.CheckBinaryQuality(maxRejects)
	}
	c.UpdateRR()
}

// CheckBinaryQuality partitions the accept/reject mask into consecutive
// 10-beat windows and zeroes any window containing more than maxRejects
// rejected beats, recording the window's sample span.
func (c *Context) CheckBinaryQuality(maxRejects int) {
	c.RejectedSegments = nil
	for win := 0; win+10 <= len(c.Mask); win += 10 {
		rejects := 0
		for i := win; i < win+10; i++ {
			if c.Mask[i] == 0 {
				rejects++
			}
		}
		if rejects <= maxRejects {
			continue
		}
		for i := win; i < win+10; i++ {
			c.Mask[i] = 0
		}
		end := len(c.Peaks) - 1
		if win+10 < len(c.Peaks) {
			end = win + 10
		}
		c.RejectedSegments = append(c.RejectedSegments, signal.Segment{
			Start: c.Peaks[win],
			End:   c.Peaks[end],
		})
	}
}

// UpdateRR rebuilds the corrected RR series from the accept/reject mask:
// an interval survives only when the peaks on both of its ends are
// accepted. RRDiff and RRSqDiff are recomputed over the corrected series,
// and differences spanning a rejected gap are discarded rather than
// computed across it.
func (c *Context) UpdateRR() {
	kept := make([]bool, len(c.RR))
	c.CorrectedRR = nil
	for i := range c.RR {
		if c.Mask[i]+c.Mask[i+1] == 2 {
			kept[i] = true
			c.CorrectedRR = append(c.CorrectedRR, c.RR[i])
		}
	}

	var diff []float64
	for i := 0; i+1 < len(c.RR); i++ {
		if kept[i] && kept[i+1] {
			diff = append(diff, math.Abs(c.RR[i+1]-c.RR[i]))
		}
	}
	c.RRDiff = diff
	c.RRSqDiff = stats.Square(diff)
}
