package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/ubcspin/REMO1-dataProcessing/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments of the analysis service.
type Metrics struct {
	runTotal         metric.Int64Counter
	runDuration      metric.Float64Histogram
	runActive        metric.Int64UpDownCounter
	samplesProcessed metric.Int64Counter
	peaksRejected    metric.Int64Counter
	errorTotal       metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("analysis.run.total",
		metric.WithDescription("Total number of analysis runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("analysis.run.duration",
		metric.WithDescription("Duration of analysis runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.run.duration histogram: %w", err)
	}

	runActive, err := meter.Int64UpDownCounter("analysis.run.active",
		metric.WithDescription("Number of currently running analyses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.run.active gauge: %w", err)
	}

	samplesProcessed, err := meter.Int64Counter("analysis.samples.processed",
		metric.WithDescription("Total signal samples processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.samples.processed counter: %w", err)
	}

	peaksRejected, err := meter.Int64Counter("analysis.peaks.rejected",
		metric.WithDescription("Total peaks rejected during quality control"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating analysis.peaks.rejected counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error.total counter: %w", err)
	}

	return &Metrics{
		runTotal:         runTotal,
		runDuration:      runDuration,
		runActive:        runActive,
		samplesProcessed: samplesProcessed,
		peaksRejected:    peaksRejected,
		errorTotal:       errorTotal,
	}, nil
}

// RecordRunStart increments the active run count.
func (m *Metrics) RecordRunStart(ctx context.Context) {
	m.runActive.Add(ctx, 1)
}

// RecordRunEnd decrements active runs and records the completed run.
func (m *Metrics) RecordRunEnd(ctx context.Context, method, status string, samples int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("spectral_method", method),
		attribute.String("status", status),
	)
	m.runActive.Add(ctx, -1)
	m.runTotal.Add(ctx, 1, attrs)
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("spectral_method", method),
	))
	m.samplesProcessed.Add(ctx, int64(samples))
}

// RecordRejectedPeaks records quality-control rejections for one run.
func (m *Metrics) RecordRejectedPeaks(ctx context.Context, n int) {
	if n > 0 {
		m.peaksRejected.Add(ctx, int64(n))
	}
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}
