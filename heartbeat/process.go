package heartbeat

import (
	"context"
	"math"
	"time"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
	"github.com/ubcspin/REMO1-dataProcessing/logger"
	"github.com/ubcspin/REMO1-dataProcessing/observability"
	"github.com/ubcspin/REMO1-dataProcessing/signal"
	"github.com/ubcspin/REMO1-dataProcessing/validation"
)

// Process runs the full analysis pipeline over one signal and returns its
// measures. Preprocessing, peak fitting and quality control happen in
// order; the time-domain measures are mandatory while breathing and the
// frequency domain degrade to NaN when the signal cannot support them.
//
// The input slice is never modified. An unknown spectral method is a
// configuration error and aborts the run even though the frequency domain
// is otherwise best-effort.
func Process(ctx context.Context, data []float64, sampleRate float64, opts Options) (*Measures, error) {
	start := time.Now()
	log := logger.WithComponent("heartbeat")

	if err := validation.Validate(opts); err != nil {
		return nil, err
	}
	sig := signal.Signal{Samples: data, SampleRate: sampleRate}
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanAnalysisRun)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrSampleRate, sampleRate)
	observability.SetSpanAttribute(ctx, observability.AttrSampleCount, len(data))
	observability.SetSpanAttribute(ctx, observability.AttrSpectralMethod, opts.SpectralMethod)

	working, err := preprocess(ctx, data, sampleRate, opts)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	c := NewContext(working, sampleRate)
	c.Baseline = signal.RollingMean(working, opts.WindowSeconds, sampleRate)

	fitCtx, fitSpan := observability.StartSpan(ctx, observability.SpanPeakFit)
	err = FitPeaks(c, opts.BPMMin, opts.BPMMax, log)
	if err != nil {
		observability.SetSpanError(fitCtx, err)
		fitSpan.End()
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	fitSpan.End()

	c.CheckPeaks(opts.RejectSegmentwise, opts.MaxRejects)
	observability.SetSpanAttribute(ctx, observability.AttrPeakCount, len(c.Peaks))
	observability.SetSpanAttribute(ctx, observability.AttrRejectedCount, len(c.RejectedPeaks))

	m, err := calcTimeDomain(c)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	m.BreathingRate = CalcBreathing(c)
	if math.IsNaN(m.BreathingRate) {
		log.Debug("breathing estimate degraded", logger.Fields(
			"corrected_rr", len(c.CorrectedRR),
		))
	}

	if opts.ComputeFrequencyDomain {
		freqCtx, freqSpan := observability.StartSpan(ctx, observability.SpanFrequency)
		lf, hf, ratio, ferr := calcFrequencyDomain(c, opts.SpectralMethod)
		switch {
		case ferr == nil:
			m.LF, m.HF, m.LFHF = lf, hf, ratio
		case errors.HasCode(ferr, errors.ErrCodeInvalidSpectralMethod):
			observability.SetSpanError(freqCtx, ferr)
			freqSpan.End()
			observability.SetSpanError(ctx, ferr)
			return nil, ferr
		default:
			observability.SetSpanError(freqCtx, ferr)
			log.Warn("frequency domain degraded", logger.ErrorFields("frequency_domain", ferr))
		}
		freqSpan.End()
	}

	if opts.ReportTiming {
		log.Info("analysis complete", logger.Fields(
			"samples", len(data),
			"sample_rate", sampleRate,
			"peaks", len(c.Peaks),
			"rejected_peaks", len(c.RejectedPeaks),
			"bpm", m.BPM,
			"duration_ms", time.Since(start).Milliseconds(),
		))
	}
	return m, nil
}

// preprocess applies the optional signal conditioning stages in their
// fixed order: amplitude scaling, clipping repair, then Hampel noise
// suppression over a peak-enhanced copy.
func preprocess(ctx context.Context, data []float64, sampleRate float64, opts Options) ([]float64, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanPreprocess)
	defer span.End()

	working := append([]float64(nil), data...)
	var err error

	if opts.InterpolateClipping {
		// The pre-scale exists to put the signal into the range the
		// clipping threshold is expressed in; without repair it has no
		// effect.
		if opts.ClippingScale {
			working, err = signal.Scale(working, signal.ScaleLo, signal.ScaleHi)
			if err != nil {
				observability.SetSpanError(ctx, err)
				return nil, err
			}
		}
		working, err = signal.InterpolateClipped(working, sampleRate, opts.ClippingThreshold)
		if err != nil {
			observability.SetSpanError(ctx, err)
			return nil, err
		}
	}

	if opts.HampelCorrect {
		working, err = signal.EnhancePeaks(working, 2)
		if err != nil {
			observability.SetSpanError(ctx, err)
			return nil, err
		}
		working = signal.HampelCorrect(working, sampleRate)
	}

	return working, nil
}
