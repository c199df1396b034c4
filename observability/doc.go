// Package observability provides OpenTelemetry tracing and metrics for the
// analysis service.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("hrv"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanAnalysisRun)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("hrv"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("hrv"))
//	metrics.RecordRun(ctx, "welch", "ok", nSamples, duration)
//
// Health Checks:
//
//	health := observability.NewServiceHealth("hrv", "1.0.0")
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
