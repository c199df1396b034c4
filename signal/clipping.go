package signal

import (
	"github.com/ubcspin/REMO1-dataProcessing/interp"
)

// Segment marks a contiguous run of samples, inclusive on both ends.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ClippingSegments returns the contiguous runs of samples exceeding
// threshold, in order. A gap of more than one sample between indices
// breaks a run.
func ClippingSegments(data []float64, threshold float64) []Segment {
	var segments []Segment
	runStart := -1
	for i, v := range data {
		if v > threshold {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			segments = append(segments, Segment{Start: runStart, End: i - 1})
			runStart = -1
		}
	}
	if runStart >= 0 {
		segments = append(segments, Segment{Start: runStart, End: len(data) - 1})
	}
	return segments
}

// InterpolateClipped repairs clipped (sensor-saturated) segments by fitting
// a cubic spline over 0.1*sampleRate samples on each side of a segment and
// overwriting the segment plus its padding with the spline's evaluation.
//
// Segments closer than the padding to either end of the signal are left
// untouched: there is not enough surrounding data to anchor the spline.
func InterpolateClipped(data []float64, sampleRate, threshold float64) ([]float64, error) {
	out := append([]float64(nil), data...)
	pad := int(0.1 * sampleRate)
	if pad < 1 {
		return out, nil
	}

	for _, seg := range ClippingSegments(data, threshold) {
		if seg.Start < pad || seg.End+1+pad > len(data) {
			continue
		}

		// Support points: pad samples immediately before and after the run.
		n := 2 * pad
		xs := make([]float64, 0, n)
		ys := make([]float64, 0, n)
		for i := seg.Start - pad; i < seg.Start; i++ {
			xs = append(xs, float64(i))
			ys = append(ys, out[i])
		}
		for i := seg.End + 1; i < seg.End+1+pad; i++ {
			xs = append(xs, float64(i))
			ys = append(ys, out[i])
		}

		spline, err := interp.NewSpline(xs, ys)
		if err != nil {
			return nil, err
		}
		for i := seg.Start - pad; i < seg.End+1+pad; i++ {
			out[i] = spline.Eval(float64(i))
		}
	}
	return out, nil
}
