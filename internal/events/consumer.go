package events

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
)

// Handler processes envelopes drained from a ChannelEventBus.
type Handler interface {
	HandleEnvelope(env events.Envelope)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(env events.Envelope)

// HandleEnvelope calls f(env).
func (f HandlerFunc) HandleEnvelope(env events.Envelope) { f(env) }

// Consume drains bus into handlers, in order, until the bus is closed or
// ctx is done. A panicking handler is logged and does not stop the loop.
func Consume(ctx context.Context, bus *ChannelEventBus, log arclog.Logger, handlers ...Handler) {
	log = log.With("component", "RelayConsumer")
	for {
		// A closed bus still delivers what it buffered before ok turns false.
		select {
		case env, ok := <-bus.GetChannel():
			if !ok {
				log.Debugf("Relay channel closed, stopping consumer")
				return
			}
			// Handlers run sequentially on this goroutine, in the given order.
			for _, h := range handlers {
				deliver(h, env, log)
			}
		case <-ctx.Done():
			log.Debugf("Context cancelled, stopping consumer")
			return
		}
	}
}

// deliver isolates one handler so its panic cannot kill the consumer.
func deliver(h Handler, env events.Envelope, log arclog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Relay handler panicked on '%s': %v", env.Type, r)
		}
	}()
	h.HandleEnvelope(env)
}
