package ingest

import (
	"math"
	"time"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
)

// SampleRateFromTimer derives the sampling rate in Hz from a millisecond
// timer column: the number of intervals divided by the elapsed time. The
// timer must advance between first and last sample.
func SampleRateFromTimer(timer []float64) (float64, error) {
	if len(timer) < 2 {
		return 0, errors.InsufficientData("timer", 2, len(timer))
	}
	elapsed := timer[len(timer)-1] - timer[0]
	if elapsed <= 0 {
		return 0, errors.InvalidInput("timer", "does not advance")
	}
	return float64(len(timer)-1) / (elapsed / 1000), nil
}

// SampleRateFromTimestamps derives the sampling rate in Hz from a column
// of time-formatted strings, parsed with the given layout. Time must
// advance between the first and last sample.
func SampleRateFromTimestamps(stamps []string, layout string) (float64, error) {
	if len(stamps) < 2 {
		return 0, errors.InsufficientData("timestamps", 2, len(stamps))
	}
	first, err := time.Parse(layout, stamps[0])
	if err != nil {
		return 0, errors.InvalidInput("timestamps", err.Error())
	}
	last, err := time.Parse(layout, stamps[len(stamps)-1])
	if err != nil {
		return 0, errors.InvalidInput("timestamps", err.Error())
	}
	elapsed := last.Sub(first).Seconds()
	if elapsed <= 0 {
		return 0, errors.InvalidInput("timestamps", "time does not advance")
	}
	return float64(len(stamps)-1) / elapsed, nil
}

// NominalSampleRate derives an integer sampling rate from the mean
// successive timer difference, floored. Matches the rate the capture
// tooling stamps on archived recordings; prefer SampleRateFromTimer for
// new data.
func NominalSampleRate(timer []float64) (float64, error) {
	if len(timer) < 2 {
		return 0, errors.InsufficientData("timer", 2, len(timer))
	}
	sum := 0.0
	for i := 1; i < len(timer); i++ {
		sum += timer[i] - timer[i-1]
	}
	meanDiff := sum / float64(len(timer)-1)
	if meanDiff <= 0 {
		return 0, errors.InvalidInput("timer", "does not advance")
	}
	return math.Floor(1000 / meanDiff), nil
}
