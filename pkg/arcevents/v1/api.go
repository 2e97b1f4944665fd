// Package v1 is the entry point for hosting arcevents contracts: it builds
// the dispatch target listeners attach to and that action functions call.
package v1

import (
	"github.com/arc-labs/arcevents/internal/target"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/metrics"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/tracing"
)

// TargetV1 is the public interface of the in-process dispatch target.
type TargetV1 interface {
	events.ListenerTarget

	// ListenerCount returns the number of listeners registered for t.
	ListenerCount(t events.EventType) int

	// MetricsRegistryProvider returns the provider holding the dispatch
	// counters.
	MetricsRegistryProvider() metrics.RegistryProvider
	// TracerProvider returns the provider dispatch spans come from.
	TracerProvider() tracing.TracerProvider

	SetEventBus(bus events.Bus) error
	SetMetricsRegistryProvider(provider metrics.RegistryProvider) error
	SetTracerProvider(provider tracing.TracerProvider) error
	SetRedactedKeywords(keywords []string) error
}

// TargetOption configures a target at creation.
type TargetOption func(TargetV1) error

// NewTarget builds a dispatch target and applies opts in order.
func NewTarget(log arclog.Logger, opts ...TargetOption) (TargetV1, error) {
	if log == nil {
		return nil, arcerrors.NewConfigError("logger cannot be nil", nil)
	}
	t := target.New(log)
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WithObserver sets the bus that receives one envelope per dispatch.
func WithObserver(bus events.Bus) TargetOption {
	return func(t TargetV1) error {
		if bus == nil {
			return arcerrors.NewConfigError("observer bus cannot be nil", nil)
		}
		return t.SetEventBus(bus)
	}
}

// WithMetricsRegistryProvider registers the dispatch counters on provider.
func WithMetricsRegistryProvider(provider metrics.RegistryProvider) TargetOption {
	return func(t TargetV1) error {
		if provider == nil {
			return arcerrors.NewConfigError("metrics registry provider cannot be nil", nil)
		}
		return t.SetMetricsRegistryProvider(provider)
	}
}

// WithTracerProvider makes dispatch spans come from provider.
func WithTracerProvider(provider tracing.TracerProvider) TargetOption {
	return func(t TargetV1) error {
		if provider == nil {
			return arcerrors.NewConfigError("tracer provider cannot be nil", nil)
		}
		return t.SetTracerProvider(provider)
	}
}

// WithRedactedKeywords replaces the payload keys masked in span attributes.
func WithRedactedKeywords(keywords []string) TargetOption {
	return func(t TargetV1) error {
		return t.SetRedactedKeywords(keywords)
	}
}
