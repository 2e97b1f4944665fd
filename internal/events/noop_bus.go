package events

import "github.com/arc-labs/arcevents/pkg/arcevents/v1/events"

// NoOpEventBus discards every envelope. It is the dispatcher's observer
// when none is configured.
type NoOpEventBus struct{}

// NewNoOpEventBus returns a bus that does nothing.
func NewNoOpEventBus() events.Bus {
	return &NoOpEventBus{}
}

// Emit does nothing.
func (n *NoOpEventBus) Emit(env events.Envelope) {}

// Ensure NoOpEventBus implements events.Bus at compile time.
var _ events.Bus = (*NoOpEventBus)(nil)
