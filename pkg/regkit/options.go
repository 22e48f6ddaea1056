package regkit

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/regkit/pkg/regkit/observability"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithID sets the registry identifier used in log fields.
// Default: a random UUID.
func WithID(id string) Option {
	return func(r *Registry) {
		if id != "" {
			r.id = id
		}
	}
}

// WithLogger enables structured logging of registrations, freeze, and
// first-time lazy initialization. Registration and retrieval errors are
// returned to the caller, never logged.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	reg := regkit.New(regkit.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics recorder for registry operations.
// Default: observability.NoopMetrics.
//
// Example:
//
//	m, err := observability.NewMetricsRecorder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := regkit.New(regkit.WithMetrics(m))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// newRegistryID generates the default registry identifier.
func newRegistryID() string {
	return uuid.NewString()
}
