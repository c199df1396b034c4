package heartbeat

// Spectral estimation method names accepted by Options.SpectralMethod.
const (
	MethodFFT         = "fft"
	MethodPeriodogram = "periodogram"
	MethodWelch       = "welch"
)

// Options configures a pipeline run. Use DefaultOptions as the starting
// point; the zero value is not a valid configuration.
type Options struct {
	// WindowSeconds is the rolling-baseline window length in seconds.
	WindowSeconds float64 `json:"window_seconds" mapstructure:"window_seconds" validate:"gt=0"`
	// ReportTiming logs the elapsed wall time of the run.
	ReportTiming bool `json:"report_timing" mapstructure:"report_timing"`
	// ComputeFrequencyDomain enables the spectral measure stage.
	ComputeFrequencyDomain bool `json:"compute_frequency_domain" mapstructure:"compute_frequency_domain"`
	// SpectralMethod selects the PSD estimator: fft, periodogram or welch.
	SpectralMethod string `json:"spectral_method" mapstructure:"spectral_method" validate:"oneof=fft periodogram welch"`
	// InterpolateClipping repairs clipped segments before the baseline.
	InterpolateClipping bool `json:"interpolate_clipping" mapstructure:"interpolate_clipping"`
	// ClippingScale pre-scales the signal to [0,1024] before clipping
	// repair. It only takes effect when InterpolateClipping is enabled.
	ClippingScale bool `json:"clipping_scale" mapstructure:"clipping_scale"`
	// ClippingThreshold is the amplitude above which a sample counts as
	// clipped. Default 1020, a few counts below a 10-bit ADC ceiling to
	// absorb data-line noise.
	ClippingThreshold float64 `json:"clipping_threshold" mapstructure:"clipping_threshold" validate:"gt=0"`
	// HampelCorrect enables large-window Hampel noise suppression.
	HampelCorrect bool `json:"hampel_correct" mapstructure:"hampel_correct"`
	// BPMMin and BPMMax bound the plausible heart-rate range for the fit.
	BPMMin float64 `json:"bpm_min" mapstructure:"bpm_min" validate:"gt=0"`
	BPMMax float64 `json:"bpm_max" mapstructure:"bpm_max" validate:"gtfield=BPMMin"`
	// RejectSegmentwise zeroes 10-beat windows with too many rejections.
	RejectSegmentwise bool `json:"reject_segmentwise" mapstructure:"reject_segmentwise"`
	// MaxRejects is the rejected-beat tolerance per 10-beat window.
	MaxRejects int `json:"max_rejects" mapstructure:"max_rejects" validate:"gte=0"`
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		WindowSeconds:          0.75,
		ReportTiming:           false,
		ComputeFrequencyDomain: false,
		SpectralMethod:         MethodWelch,
		InterpolateClipping:    true,
		ClippingScale:          false,
		ClippingThreshold:      1020,
		HampelCorrect:          false,
		BPMMin:                 40,
		BPMMax:                 180,
		RejectSegmentwise:      false,
		MaxRejects:             3,
	}
}
