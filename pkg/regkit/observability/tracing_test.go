package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Update the package-level tracer
	tracer = otel.Tracer("regkit")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartInitSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	_, span := StartInitSpan(context.Background(), "db")
	require.NotNil(t, span)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "regkit.init.db", s.Name)
	assert.Contains(t, s.Attributes, attribute.String("registry.key", "db"))
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("records error status", func(t *testing.T) {
		exporter.Reset()
		_, span := StartInitSpan(context.Background(), "db")
		EndSpanWithError(span, errors.New("dial failed"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		require.Len(t, spans[0].Events, 1, "error should be recorded as event")
	})

	t.Run("records ok status", func(t *testing.T) {
		exporter.Reset()
		_, span := StartInitSpan(context.Background(), "db")
		EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
	})

	t.Run("nil span is safe", func(t *testing.T) {
		assert.NotPanics(t, func() {
			EndSpanWithError(nil, errors.New("ignored"))
		})
	})
}

func TestTracedProducer(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	calls := 0
	fn := TracedProducer(context.Background(), "cache", func() any {
		calls++
		return "warm"
	})

	assert.Equal(t, 0, calls, "wrapping must not invoke the function")
	assert.Equal(t, "warm", fn())
	assert.Equal(t, "warm", fn())
	assert.Equal(t, 2, calls)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2, "one span per invocation")
	assert.Equal(t, "regkit.init.cache", spans[0].Name)
}
