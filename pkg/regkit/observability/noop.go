package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(_ context.Context, _ string, _ bool) {}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ bool, _ time.Duration) {}

// RecordLazyInit does nothing.
func (NoopMetrics) RecordLazyInit(_ context.Context, _ string, _ time.Duration) {}

// RecordFreeze does nothing.
func (NoopMetrics) RecordFreeze(_ context.Context) {}
