// Package target implements the synchronous in-process event dispatcher.
package target

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	relay "github.com/arc-labs/arcevents/internal/events"
	"github.com/arc-labs/arcevents/internal/metrics"
	"github.com/arc-labs/arcevents/internal/tracing"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	arcmetrics "github.com/arc-labs/arcevents/pkg/arcevents/v1/metrics"
	arctracing "github.com/arc-labs/arcevents/pkg/arcevents/v1/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// entry is one registration. id makes removal exact even when the same
// listener is registered twice.
type entry struct {
	id       uint64
	listener events.Listener
}

// counters are the dispatch metrics, labelled by event type.
type counters struct {
	dispatched *prometheus.CounterVec
	panics     *prometheus.CounterVec
	unhandled  *prometheus.CounterVec
}

// Dispatcher is a ListenerTarget. Listeners of a type run in registration
// order, once per dispatch, on the dispatching goroutine.
type Dispatcher struct {
	// mu guards every field below. Dispatch holds it only while taking its
	// snapshot, never while listeners run.
	mu sync.RWMutex
	// listeners slices are replaced, never mutated, so a snapshot stays valid.
	listeners map[events.EventType][]entry
	nextID    uint64

	log             arclog.Logger
	bus             events.Bus
	tracerProvider  arctracing.TracerProvider
	tracer          trace.Tracer
	metricsProvider arcmetrics.RegistryProvider
	counters        counters
	// redactKeywords masks span attributes and recorded errors.
	redactKeywords map[string]struct{}
}

// New returns a Dispatcher with a no-op observer, no-op tracing and a
// private Prometheus registry.
func New(log arclog.Logger) *Dispatcher {
	if log == nil {
		panic("target.New requires a non-nil logger")
	}
	d := &Dispatcher{
		listeners:      make(map[events.EventType][]entry),
		log:            log.With("component", "Dispatcher"),
		bus:            relay.NewNoOpEventBus(),
		redactKeywords: tracing.KeywordSet(tracing.DefaultRedactedKeywords),
	}
	d.setTracer(tracing.NewNoOpProvider())
	if err := d.SetMetricsRegistryProvider(metrics.NewPrometheusRegistryProvider()); err != nil {
		panic(fmt.Sprintf("registering dispatcher metrics on a fresh registry: %v", err))
	}
	return d
}

// AddListener registers l for events of type t. The returned function
// removes exactly this registration and may be called more than once.
func (d *Dispatcher) AddListener(t events.EventType, l events.Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.listeners[t] = append(d.listeners[t], entry{id: id, listener: l})
	return func() { d.removeListener(t, id) }
}

func (d *Dispatcher) removeListener(t events.EventType, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.listeners[t]
	for i, e := range list {
		if e.id != id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(d.listeners, t)
		} else {
			d.listeners[t] = next
		}
		return
	}
}

// ListenerCount returns the number of listeners registered for t.
func (d *Dispatcher) ListenerCount(t events.EventType) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[t])
}

// Dispatch delivers e to the listeners registered for its type. Listeners
// added or removed while a dispatch runs take effect on the next dispatch.
// A listener calling StopPropagation ends delivery after it returns. A
// panicking listener is recovered and reported; the others still run.
func (d *Dispatcher) Dispatch(ctx context.Context, e events.Event) {
	if e == nil {
		return
	}
	start := time.Now()
	typ := e.Type()

	// Snapshot under the read lock; listeners may add or remove listeners.
	d.mu.RLock()
	snapshot := d.listeners[typ]
	tracer, bus, ctrs, keywords := d.tracer, d.bus, d.counters, d.redactKeywords
	d.mu.RUnlock()

	// The detail feeds both the span and the envelope.
	var detail interface{}
	if dt, ok := e.(events.Detailer); ok {
		detail = dt.Detail()
	}

	ctx, span := tracer.Start(ctx, "dispatch "+string(typ), trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	if span.IsRecording() {
		attrs := []attribute.KeyValue{
			attribute.String("event.type", string(typ)),
			attribute.Int("event.listeners", len(snapshot)),
		}
		attrs = append(attrs, tracing.DetailAttributes(detail)...)
		span.SetAttributes(tracing.RedactAttributes(attrs, keywords)...)
	}

	stopper, canStop := e.(events.Stopper)
	delivered := 0
	for _, en := range snapshot {
		d.invoke(ctx, span, e, en.listener, ctrs.panics, keywords)
		delivered++
		if canStop && stopper.PropagationStopped() {
			break
		}
	}

	ctrs.dispatched.WithLabelValues(string(typ)).Inc()
	// Only request events can be unanswered; notifications never are.
	answered := false
	if a, ok := e.(events.Answerer); ok {
		answered = a.Answered()
		if !answered {
			ctrs.unhandled.WithLabelValues(string(typ)).Inc()
			d.log.LogCtx(ctx, slog.LevelDebug, "Request event left unanswered", "event_type", string(typ), "listeners", delivered)
		}
	}

	// One envelope per dispatch, after every listener ran.
	bus.Emit(events.Envelope{
		ID:        relay.NewEnvelopeID(),
		Type:      typ,
		Timestamp: start,
		Listeners: delivered,
		Answered:  answered,
		Detail:    detail,
	})
}

// invoke runs one listener and converts a panic into a logged
// ListenerPanicError recorded on the span.
func (d *Dispatcher) invoke(ctx context.Context, span trace.Span, e events.Event, l events.Listener, panics *prometheus.CounterVec, keywords map[string]struct{}) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := arcerrors.NewListenerPanicError(string(e.Type()), r)
		d.log.Errorf("Recovered from listener panic: %v", err)
		tracing.RecordErrorWithContext(span, err, keywords)
		panics.WithLabelValues(string(e.Type())).Inc()
	}()
	l(ctx, e)
}

// SetEventBus sets the observer that receives one envelope per dispatch.
func (d *Dispatcher) SetEventBus(bus events.Bus) error {
	if bus == nil {
		return arcerrors.NewConfigError("event bus cannot be nil", nil)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bus = bus
	return nil
}

// SetTracerProvider replaces the provider dispatch spans come from.
func (d *Dispatcher) SetTracerProvider(provider arctracing.TracerProvider) error {
	if provider == nil {
		return arcerrors.NewConfigError("tracer provider cannot be nil", nil)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setTracer(provider)
	return nil
}

// setTracer must be called with mu held or before d is shared.
func (d *Dispatcher) setTracer(provider arctracing.TracerProvider) {
	d.tracerProvider = provider
	d.tracer = provider.GetTracer(tracing.TracerName)
}

// SetMetricsRegistryProvider registers the dispatcher counters on the
// provider's registry. Counters already registered there are reused.
func (d *Dispatcher) SetMetricsRegistryProvider(provider arcmetrics.RegistryProvider) error {
	if provider == nil {
		return arcerrors.NewConfigError("metrics registry provider cannot be nil", nil)
	}
	reg := provider.Registry()
	register := func(name, help string) (*prometheus.CounterVec, error) {
		return metrics.RegisterCounterVec(reg, prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      name,
			Help:      help,
		}, "type")
	}
	dispatched, err := register("dispatched_total", "Events dispatched, by event type.")
	if err != nil {
		return arcerrors.NewConfigError("registering dispatched_total", err)
	}
	panics, err := register("listener_panics_total", "Listener panics recovered by the dispatcher, by event type.")
	if err != nil {
		return arcerrors.NewConfigError("registering listener_panics_total", err)
	}
	unhandled, err := register("unhandled_total", "Request events no listener attached a result to, by event type.")
	if err != nil {
		return arcerrors.NewConfigError("registering unhandled_total", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.metricsProvider = provider
	d.counters = counters{dispatched: dispatched, panics: panics, unhandled: unhandled}
	return nil
}

// SetRedactedKeywords replaces the keywords masked in span attributes and
// recorded errors.
func (d *Dispatcher) SetRedactedKeywords(keywords []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.redactKeywords = tracing.KeywordSet(keywords)
	return nil
}

// MetricsRegistryProvider returns the provider holding the counters.
func (d *Dispatcher) MetricsRegistryProvider() arcmetrics.RegistryProvider {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.metricsProvider
}

// TracerProvider returns the provider dispatch spans come from.
func (d *Dispatcher) TracerProvider() arctracing.TracerProvider {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tracerProvider
}

// Ensure Dispatcher implements events.ListenerTarget at compile time.
var _ events.ListenerTarget = (*Dispatcher)(nil)
