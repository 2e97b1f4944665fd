// Package eventtest provides a dispatcher and listeners for tests of event
// contracts: recorders that capture dispatched events and responders that
// answer request events.
package eventtest

import (
	"context"
	"sync"

	"github.com/arc-labs/arcevents/internal/logger"
	"github.com/arc-labs/arcevents/internal/target"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
)

// NewTarget returns a dispatcher that logs nothing.
func NewTarget() *target.Dispatcher {
	return target.New(logger.NewNopLogger())
}

// Recorder captures the events dispatched for one type.
type Recorder struct {
	mu     sync.Mutex
	events []events.Event
}

// Record attaches a Recorder for typ to t.
func Record(t events.ListenerTarget, typ events.EventType) *Recorder {
	r := &Recorder{}
	t.AddListener(typ, r.listen)
	return r
}

func (r *Recorder) listen(_ context.Context, e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns the captured events in dispatch order.
func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of captured events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns the most recent event, or nil.
func (r *Recorder) Last() events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

// Respond attaches a listener that resolves every request of type typ with
// v, and records the requests it answered.
func Respond[T any](t events.ListenerTarget, typ events.EventType, v T) *Recorder {
	r := &Recorder{}
	t.AddListener(typ, func(ctx context.Context, e events.Event) {
		r.listen(ctx, e)
		if req, ok := e.(interface{ Resolve(T) }); ok {
			req.Resolve(v)
		}
	})
	return r
}

// Fail attaches a listener that rejects every request of type typ with err.
func Fail(t events.ListenerTarget, typ events.EventType, err error) *Recorder {
	r := &Recorder{}
	t.AddListener(typ, func(ctx context.Context, e events.Event) {
		r.listen(ctx, e)
		if req, ok := e.(interface{ Reject(error) }); ok {
			req.Reject(err)
		}
	})
	return r
}
