package heartbeat

import (
	"encoding/json"
	"math"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/interp"
	"github.com/ubcspin/REMO1-dataProcessing/spectrum"
	"github.com/ubcspin/REMO1-dataProcessing/stats"
)

// Measures is the immutable output record of one pipeline run. It is
// assembled once at the end of the run and never mutated afterwards.
// Optional measures that were not computed (or degraded) are NaN.
type Measures struct {
	// BPM is the heart rate in beats per minute.
	BPM float64 `json:"bpm"`
	// IBI is the mean inter-beat interval in milliseconds.
	IBI float64 `json:"ibi"`
	// SDNN is the standard deviation of RR intervals.
	SDNN float64 `json:"sdnn"`
	// SDSD is the standard deviation of successive RR differences.
	SDSD float64 `json:"sdsd"`
	// RMSSD is the root mean square of successive RR differences.
	RMSSD float64 `json:"rmssd"`
	// NN20 and NN50 list the successive differences exceeding 20/50 ms.
	NN20 []float64 `json:"nn20"`
	NN50 []float64 `json:"nn50"`
	// NN20Count and NN50Count are the corresponding counts.
	NN20Count int `json:"nn20_count"`
	NN50Count int `json:"nn50_count"`
	// PNN20 and PNN50 are the fractions of successive differences
	// exceeding 20/50 ms; NaN when no differences exist.
	PNN20 float64 `json:"pnn20"`
	PNN50 float64 `json:"pnn50"`
	// HRMad is the median absolute deviation of RR intervals.
	HRMad float64 `json:"hr_mad"`
	// LF and HF are the low/high-frequency band powers of the RR spectrum;
	// LFHF is their ratio. NaN unless the frequency domain was computed.
	LF   float64 `json:"lf"`
	HF   float64 `json:"hf"`
	LFHF float64 `json:"lf_hf"`
	// BreathingRate is the estimated respiration rate in Hz, NaN when the
	// estimate degraded.
	BreathingRate float64 `json:"breathingrate"`
}

// MarshalJSON renders the not-computed (NaN) measures as null, since JSON
// has no NaN literal and encoding/json rejects the value outright.
func (m Measures) MarshalJSON() ([]byte, error) {
	type wire struct {
		BPM           float64   `json:"bpm"`
		IBI           float64   `json:"ibi"`
		SDNN          float64   `json:"sdnn"`
		SDSD          *float64  `json:"sdsd"`
		RMSSD         *float64  `json:"rmssd"`
		NN20          []float64 `json:"nn20"`
		NN50          []float64 `json:"nn50"`
		NN20Count     int       `json:"nn20_count"`
		NN50Count     int       `json:"nn50_count"`
		PNN20         *float64  `json:"pnn20"`
		PNN50         *float64  `json:"pnn50"`
		HRMad         float64   `json:"hr_mad"`
		LF            *float64  `json:"lf"`
		HF            *float64  `json:"hf"`
		LFHF          *float64  `json:"lf_hf"`
		BreathingRate *float64  `json:"breathingrate"`
	}
	return json.Marshal(wire{
		BPM:           m.BPM,
		IBI:           m.IBI,
		SDNN:          m.SDNN,
		SDSD:          nanAsNull(m.SDSD),
		RMSSD:         nanAsNull(m.RMSSD),
		NN20:          m.NN20,
		NN50:          m.NN50,
		NN20Count:     m.NN20Count,
		NN50Count:     m.NN50Count,
		PNN20:         nanAsNull(m.PNN20),
		PNN50:         nanAsNull(m.PNN50),
		HRMad:         m.HRMad,
		LF:            nanAsNull(m.LF),
		HF:            nanAsNull(m.HF),
		LFHF:          nanAsNull(m.LFHF),
		BreathingRate: nanAsNull(m.BreathingRate),
	})
}

func nanAsNull(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// calcTimeDomain computes the time-series measures over the corrected RR
// series. At least one corrected interval is required; without it every
// downstream measure is meaningless and the run must abort.
func calcTimeDomain(c *Context) (*Measures, error) {
	rr := c.CorrectedRR
	if len(rr) == 0 {
		return nil, errors.InsufficientData("time-domain measures", 1, 0)
	}

	m := &Measures{
		BPM:           60000 / stats.Mean(rr),
		IBI:           stats.Mean(rr),
		SDNN:          stats.Std(rr),
		SDSD:          stats.Std(c.RRDiff),
		RMSSD:         math.Sqrt(stats.Mean(c.RRSqDiff)),
		HRMad:         stats.MAD(rr),
		LF:            math.NaN(),
		HF:            math.NaN(),
		LFHF:          math.NaN(),
		BreathingRate: math.NaN(),
	}

	for _, d := range c.RRDiff {
		if d > 20 {
			m.NN20 = append(m.NN20, d)
		}
		if d > 50 {
			m.NN50 = append(m.NN50, d)
		}
	}
	m.NN20Count = len(m.NN20)
	m.NN50Count = len(m.NN50)
	if len(c.RRDiff) > 0 {
		m.PNN20 = float64(m.NN20Count) / float64(len(c.RRDiff))
		m.PNN50 = float64(m.NN50Count) / float64(len(c.RRDiff))
	} else {
		m.PNN20 = math.NaN()
		m.PNN50 = math.NaN()
	}
	return m, nil
}

// calcFrequencyDomain estimates the LF/HF band powers of the RR series.
// The corrected intervals are placed on their cumulative time axis,
// resampled onto a uniform 1 ms grid through a cubic spline, and the PSD
// of the resampled series is integrated over the LF [0.04,0.15] Hz and HF
// [0.16,0.5] Hz bands.
func calcFrequencyDomain(c *Context, method string) (lf, hf, ratio float64, err error) {
	switch method {
	case MethodFFT, MethodPeriodogram, MethodWelch:
	default:
		return 0, 0, 0, errors.InvalidSpectralMethod(method)
	}

	rr := c.CorrectedRR
	if len(rr) < 4 {
		return 0, 0, 0, errors.InsufficientData("frequency-domain measures", 4, len(rr))
	}

	// Cumulative time axis in milliseconds.
	times := make([]float64, len(rr))
	total := 0.0
	for i, v := range rr {
		total += v
		times[i] = total
	}

	gridLen := int(times[len(times)-1])
	if gridLen < 2 {
		return 0, 0, 0, errors.InsufficientData("spectral resampling", 2, gridLen)
	}
	grid := stats.Linspace(times[0], times[len(times)-1], gridLen)

	resampled, err := interp.Resample(times, rr, grid)
	if err != nil {
		return 0, 0, 0, err
	}

	// The 1 ms grid corresponds to a 1000 Hz sampling rate.
	var psd spectrum.PSD
	switch method {
	case MethodFFT:
		psd = spectrum.HalfSpectrum(resampled, 1000)
	case MethodPeriodogram:
		psd = spectrum.Periodogram(resampled, 1000)
	case MethodWelch:
		psd = spectrum.Welch(resampled, 1000, 100000)
	}

	lf = spectrum.BandPower(psd, 0.04, 0.15)
	hf = spectrum.BandPower(psd, 0.16, 0.5)
	if hf == 0 {
		ratio = math.NaN()
	} else {
		ratio = lf / hf
	}
	return lf, hf, ratio, nil
}
