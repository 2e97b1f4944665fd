package events

import (
	"context"
	"strconv"

	"github.com/arc-labs/arcevents/internal/metrics"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsEventListener counts relayed envelopes per event type and per
// answered flag.
type MetricsEventListener struct {
	// bus is drained by Start. Nil when a shared consumer feeds the listener.
	bus *ChannelEventBus
	log arclog.Logger
	// relayed counts envelopes by type and answered flag.
	relayed *prometheus.CounterVec
	// noTarget counts envelopes that reached no listener.
	noTarget prometheus.Counter
}

// NewMetricsEventListener registers its counters on reg. bus may be nil
// when the listener is only used as a Handler of a shared consumer.
func NewMetricsEventListener(bus *ChannelEventBus, reg prometheus.Registerer, log arclog.Logger) (*MetricsEventListener, error) {
	if reg == nil || log == nil {
		panic("MetricsEventListener requires a non-nil Registerer and Logger")
	}
	// Counters already on reg are reused, so several listeners can share it.
	relayed, err := metrics.RegisterCounterVec(reg, prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "relay",
		Name:      "envelopes_total",
		Help:      "Envelopes received by relay observers, by event type and answered flag.",
	}, "type", "answered")
	if err != nil {
		return nil, err
	}
	noTarget, err := metrics.RegisterCounterVec(reg, prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "relay",
		Name:      "unobserved_total",
		Help:      "Envelopes dispatched while no listener was attached to their type.",
	})
	if err != nil {
		return nil, err
	}
	return &MetricsEventListener{
		bus:      bus,
		log:      log.With("component", "MetricsEventListener"),
		relayed:  relayed,
		noTarget: noTarget.WithLabelValues(),
	}, nil
}

// Start drains the listener's own bus until it closes or ctx is done.
func (l *MetricsEventListener) Start(ctx context.Context) {
	if l.bus == nil {
		return
	}
	l.log.Debugf("Starting metrics event listener")
	Consume(ctx, l.bus, l.log, l)
}

// HandleEnvelope implements Handler.
func (l *MetricsEventListener) HandleEnvelope(env events.Envelope) {
	l.relayed.WithLabelValues(string(env.Type), strconv.FormatBool(env.Answered)).Inc()
	if env.Listeners == 0 {
		l.noTarget.Inc()
	}
}

// Ensure MetricsEventListener implements Handler at compile time.
var _ Handler = (*MetricsEventListener)(nil)
