package events

import (
	"sync"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"github.com/prometheus/client_golang/prometheus"
)

// ChannelEventBus implements events.Bus with a buffered channel. The
// dispatcher emits envelopes into it; Consume drains it on another
// goroutine and hands each envelope to the registered handlers.
type ChannelEventBus struct {
	// channel holds envelopes pending delivery to the consumer.
	channel chan events.Envelope
	// block selects the overflow strategy: wait for space instead of
	// dropping the envelope.
	block bool
	// log reports dropped envelopes and lifecycle changes.
	log arclog.Logger
	// dropped counts envelopes lost to a full buffer. Optional.
	dropped prometheus.Counter

	// done is closed as soon as Close starts. A blocked Emit selects on it
	// so it can give up its read lock when nobody drains the channel.
	done      chan struct{}
	closeDone sync.Once

	// mu guards closed and keeps Close from closing channel while an Emit
	// is sending on it.
	mu     sync.RWMutex
	closed bool
}

// NewChannelEventBus creates a bus for policy. A nil logger panics: the bus
// reports drops and cannot run silently.
func NewChannelEventBus(policy config.RelayPolicy, log arclog.Logger) *ChannelEventBus {
	if log == nil {
		panic("ChannelEventBus requires a non-nil logger")
	}
	// Zero values fall back to the defaults.
	policy = policy.Normalize()
	bus := &ChannelEventBus{
		channel: make(chan events.Envelope, policy.BufferSize),
		block:   policy.OverflowStrategy == config.OverflowBlock,
		log:     log.With("component", "ChannelEventBus"),
		done:    make(chan struct{}),
	}
	bus.log.Debugf("ChannelEventBus initialized (buffer: %d, overflow: %s)", policy.BufferSize, policy.OverflowStrategy)
	return bus
}

// SetDroppedCounter makes the bus count envelopes lost to a full buffer.
func (c *ChannelEventBus) SetDroppedCounter(counter prometheus.Counter) {
	c.dropped = counter
}

// Emit enqueues env. Under drop_new a full buffer drops the envelope with a
// warning; under block Emit waits until there is space or the bus is
// closed. Emitting after Close is a no-op.
func (c *ChannelEventBus) Emit(env events.Envelope) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}

	if c.block {
		select {
		case c.channel <- env:
		case <-c.done:
			// Close is waiting for the write lock; the consumer may be gone.
			c.log.Warnf("Relay closed while waiting for buffer space, dropping envelope for '%s'", env.Type)
			c.countDrop()
		}
		return
	}

	// Non-blocking send: the dispatcher never waits on observers.
	select {
	case c.channel <- env:
	default:
		c.log.Warnf("Relay buffer full, dropping envelope for '%s'", env.Type)
		c.countDrop()
	}
}

func (c *ChannelEventBus) countDrop() {
	if c.dropped != nil {
		c.dropped.Inc()
	}
}

// GetChannel returns the receive side for consumers. It is not part of
// events.Bus.
func (c *ChannelEventBus) GetChannel() <-chan events.Envelope {
	return c.channel
}

// Close stops accepting envelopes and closes the channel so consumers
// drain what is buffered and return. Emits blocked on a full buffer are
// released and their envelopes dropped. Close is idempotent.
func (c *ChannelEventBus) Close() {
	// Release blocked emitters first; they hold read locks.
	c.closeDone.Do(func() { close(c.done) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.channel)
	c.log.Debugf("ChannelEventBus closed")
}

// Ensure ChannelEventBus implements events.Bus at compile time.
var _ events.Bus = (*ChannelEventBus)(nil)
