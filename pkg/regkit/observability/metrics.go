package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegistration records a registration attempt and whether it was accepted.
	RecordRegistration(ctx context.Context, kind string, accepted bool)

	// RecordLookup records a Get call with its hit/miss status and duration.
	RecordLookup(ctx context.Context, hit bool, duration time.Duration)

	// RecordLazyInit records the one-time initialization of a lazy entry.
	RecordLazyInit(ctx context.Context, key string, duration time.Duration)

	// RecordFreeze records the registry's open-to-frozen transition.
	RecordFreeze(ctx context.Context)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	registrations metric.Int64Counter
	lookups       metric.Int64Counter
	lookupLatency metric.Float64Histogram
	lazyInits     metric.Int64Counter
	lazyLatency   metric.Float64Histogram
	freezes       metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("regkit")

	registrations, err := meter.Int64Counter("regkit.registrations",
		metric.WithDescription("Number of registration attempts"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("regkit.lookups",
		metric.WithDescription("Number of Get calls"),
	)
	if err != nil {
		return nil, err
	}

	lookupLatency, err := meter.Float64Histogram("regkit.lookup.latency_ms",
		metric.WithDescription("Get latency in milliseconds, producer included"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lazyInits, err := meter.Int64Counter("regkit.lazy.inits",
		metric.WithDescription("Number of one-time lazy initializations"),
	)
	if err != nil {
		return nil, err
	}

	lazyLatency, err := meter.Float64Histogram("regkit.lazy.latency_ms",
		metric.WithDescription("Lazy initialization latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	freezes, err := meter.Int64Counter("regkit.freezes",
		metric.WithDescription("Number of open-to-frozen transitions"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations: registrations,
		lookups:       lookups,
		lookupLatency: lookupLatency,
		lazyInits:     lazyInits,
		lazyLatency:   lazyLatency,
		freezes:       freezes,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRegistration records a registration attempt.
func (m *otelMetrics) RecordRegistration(ctx context.Context, kind string, accepted bool) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("accepted", accepted),
	))
}

// RecordLookup records a Get call.
func (m *otelMetrics) RecordLookup(ctx context.Context, hit bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("hit", hit),
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.lookupLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordLazyInit records a one-time lazy initialization.
func (m *otelMetrics) RecordLazyInit(ctx context.Context, key string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("key", key),
	}
	m.lazyInits.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.lazyLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordFreeze records the open-to-frozen transition.
func (m *otelMetrics) RecordFreeze(ctx context.Context) {
	m.freezes.Add(ctx, 1)
}
