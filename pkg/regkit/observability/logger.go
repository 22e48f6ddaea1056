// Package observability provides opt-in observability for regkit:
// structured logging, metrics, and tracing helpers.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Span helpers for producers via OpenTelemetry
//
// Everything is opt-in and has no-op behavior when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogRegister logs a successful registration.
func LogRegister(logger *slog.Logger, registryID, key, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("key registered",
		slog.String("registry_id", registryID),
		slog.String("key", key),
		slog.String("kind", kind),
	)
}

// LogFreeze logs the registry's open-to-frozen transition.
func LogFreeze(logger *slog.Logger, registryID string, keyCount int) {
	if logger == nil {
		return
	}
	logger.Info("registry frozen",
		slog.String("registry_id", registryID),
		slog.Int("keys", keyCount),
	)
}

// LogLazyInit logs the one-time initialization of a lazy entry.
func LogLazyInit(logger *slog.Logger, registryID, key string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("lazy entry initialized",
		slog.String("registry_id", registryID),
		slog.String("key", key),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
