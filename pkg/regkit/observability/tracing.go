package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the regkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("regkit")

// StartInitSpan starts a span covering the construction of a service,
// typically inside a factory or lazy function registered with the registry.
//
// The span uses the global OTel tracer provider. Configure the provider
// before use:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func StartInitSpan(ctx context.Context, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "regkit.init."+key,
		trace.WithAttributes(
			attribute.String("registry.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TracedProducer wraps a producer function so each invocation runs inside
// its own span. The registry's Get has no context parameter (it is a plain
// in-process lookup), so the span descends from ctx as captured at wrap
// time; hosts usually pass their composition-root context.
//
// Example:
//
//	reg.Lazy("db", observability.TracedProducer(ctx, "db", func() any {
//	    return openDB()
//	}))
func TracedProducer(ctx context.Context, key string, fn func() any) func() any {
	return func() any {
		_, span := StartInitSpan(ctx, key)
		defer span.End()
		return fn()
	}
}
