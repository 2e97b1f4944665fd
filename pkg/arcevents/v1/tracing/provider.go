// Package tracing defines the tracer provider contract used for dispatch spans.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TracerProvider hands out tracers for dispatch spans and flushes them on
// shutdown.
type TracerProvider interface {
	// GetTracer returns a Tracer with the given name and options.
	GetTracer(name string, opts ...trace.TracerOption) trace.Tracer

	// Shutdown flushes buffered spans. The context should carry a deadline.
	// NoOp implementations return nil.
	Shutdown(ctx context.Context) error
}
