package target_test

import (
	"context"
	"sync"
	"testing"

	"github.com/arc-labs/arcevents/internal/logger"
	"github.com/arc-labs/arcevents/internal/metrics"
	"github.com/arc-labs/arcevents/internal/target"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	signalType events.EventType = "testsignal"
	readType   events.EventType = "testread"
)

type item struct{ Password string }

type busRecorder struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func (b *busRecorder) Emit(env events.Envelope) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.envelopes = append(b.envelopes, env)
}

func newDispatcher() *target.Dispatcher {
	return target.New(logger.NewNopLogger())
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, eventType string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if hasLabel(m, "type", eventType) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func hasLabel(m *dto.Metric, name, value string) bool {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	d := newDispatcher()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		d.AddListener(signalType, func(context.Context, events.Event) { order = append(order, i) })
	}
	d.AddListener("othertype", func(context.Context, events.Event) { order = append(order, 99) })

	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestStopPropagation(t *testing.T) {
	d := newDispatcher()
	var calls []string
	d.AddListener(signalType, func(_ context.Context, e events.Event) {
		calls = append(calls, "first")
		e.(*events.SignalEvent).StopPropagation()
	})
	d.AddListener(signalType, func(context.Context, events.Event) { calls = append(calls, "second") })

	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Equal(t, []string{"first"}, calls)
}

func TestRemoveListener(t *testing.T) {
	d := newDispatcher()
	calls := 0
	remove := d.AddListener(signalType, func(context.Context, events.Event) { calls++ })
	assert.Equal(t, 1, d.ListenerCount(signalType))

	remove()
	remove()
	assert.Zero(t, d.ListenerCount(signalType))
	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Zero(t, calls)
}

func TestListenerAddedDuringDispatchRunsNextTime(t *testing.T) {
	d := newDispatcher()
	late := 0
	d.AddListener(signalType, func(context.Context, events.Event) {
		d.AddListener(signalType, func(context.Context, events.Event) { late++ })
	})

	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Zero(t, late)
	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Equal(t, 1, late)
}

func TestPanickingListenerIsRecovered(t *testing.T) {
	d := newDispatcher()
	reached := false
	d.AddListener(signalType, func(context.Context, events.Event) { panic("listener bug") })
	d.AddListener(signalType, func(context.Context, events.Event) { reached = true })

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	})
	assert.True(t, reached, "listeners after a panicking one still run")

	reg := d.MetricsRegistryProvider().Registry()
	assert.Equal(t, 1.0, counterValue(t, reg, "arcevents_listener_panics_total", string(signalType)))
}

func TestDispatchMetrics(t *testing.T) {
	d := newDispatcher()
	provider := metrics.NewPrometheusRegistryProvider()
	require.NoError(t, d.SetMetricsRegistryProvider(provider))

	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	d.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	e, err := events.NewReadEvent[item](readType, "id1", "")
	require.NoError(t, err)
	d.Dispatch(context.Background(), e)

	reg := provider.Registry()
	assert.Equal(t, 2.0, counterValue(t, reg, "arcevents_dispatched_total", string(signalType)))
	assert.Equal(t, 1.0, counterValue(t, reg, "arcevents_unhandled_total", string(readType)))
	assert.Zero(t, counterValue(t, reg, "arcevents_unhandled_total", string(signalType)), "notifications are never unhandled")
}

func TestSharedMetricsProvider(t *testing.T) {
	provider := metrics.NewPrometheusRegistryProvider()
	a, b := newDispatcher(), newDispatcher()
	require.NoError(t, a.SetMetricsRegistryProvider(provider))
	require.NoError(t, b.SetMetricsRegistryProvider(provider))

	a.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	b.Dispatch(context.Background(), events.NewSignalEvent(signalType))
	assert.Equal(t, 2.0, counterValue(t, provider.Registry(), "arcevents_dispatched_total", string(signalType)))
}

func TestObserverReceivesOneEnvelopePerDispatch(t *testing.T) {
	d := newDispatcher()
	bus := &busRecorder{}
	require.NoError(t, d.SetEventBus(bus))
	d.AddListener(readType, func(_ context.Context, e events.Event) {
		e.(*events.ReadEvent[item]).Resolve(&item{})
	})

	e, err := events.NewReadEvent[item](readType, "id1", "r1")
	require.NoError(t, err)
	d.Dispatch(context.Background(), e)

	require.Len(t, bus.envelopes, 1)
	env := bus.envelopes[0]
	assert.Equal(t, readType, env.Type)
	assert.Equal(t, 1, env.Listeners)
	assert.True(t, env.Answered)
	assert.NotEmpty(t, env.ID)
	assert.False(t, env.Timestamp.IsZero())
	assert.Equal(t, map[string]interface{}{"id": "id1", "rev": "r1"}, env.Detail)
}

func TestSettersRejectNil(t *testing.T) {
	d := newDispatcher()
	assert.Error(t, d.SetEventBus(nil))
	assert.Error(t, d.SetTracerProvider(nil))
	assert.Error(t, d.SetMetricsRegistryProvider(nil))
	assert.NotNil(t, d.TracerProvider())
}

func TestNilEventIsIgnored(t *testing.T) {
	d := newDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(context.Background(), nil) })
}
