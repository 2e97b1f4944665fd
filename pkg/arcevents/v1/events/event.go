// Package events defines the in-process event contract: event types, the
// synchronous dispatch target, the result slot request events carry and
// the payload shapes shared by every domain package.
package events

import "context"

// EventType is the flat, globally unique identifier of an event category,
// e.g. "modelprojectchange".
type EventType string

// String returns the identifier.
func (t EventType) String() string { return string(t) }

// Event is a message dispatched on a Target.
type Event interface {
	// Type returns the event's identifier.
	Type() EventType
}

// Target publishes events to in-process listeners. Dispatch is synchronous:
// every listener has run by the time Dispatch returns.
type Target interface {
	Dispatch(ctx context.Context, e Event)
}

// Listener receives dispatched events of the type it was registered for.
type Listener func(ctx context.Context, e Event)

// ListenerTarget is a Target listeners can be attached to.
type ListenerTarget interface {
	Target
	// AddListener registers l for events of type t and returns a function
	// that removes it again.
	AddListener(t EventType, l Listener) (remove func())
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(ctx context.Context, e Event)

// Dispatch calls f(ctx, e).
func (f TargetFunc) Dispatch(ctx context.Context, e Event) { f(ctx, e) }

// Handle adapts a handler for a concrete event type to a Listener. Events
// of any other Go type are ignored.
func Handle[E Event](fn func(ctx context.Context, e E)) Listener {
	return func(ctx context.Context, e Event) {
		if typed, ok := e.(E); ok {
			fn(ctx, typed)
		}
	}
}

// Base carries the event type and the propagation flag. Payload structs
// embed it.
type Base struct {
	typ     EventType
	stopped bool
}

// NewBase returns a Base for event type t.
func NewBase(t EventType) Base {
	return Base{typ: t}
}

// Type returns the event type.
func (b *Base) Type() EventType { return b.typ }

// StopPropagation prevents listeners registered after the current one from
// receiving the event.
func (b *Base) StopPropagation() { b.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (b *Base) PropagationStopped() bool { return b.stopped }

// Stopper is implemented by events that honor StopPropagation.
type Stopper interface {
	PropagationStopped() bool
}

// Detailer is implemented by events that can describe their payload as a
// plain value, used by observers such as the journal.
type Detailer interface {
	Detail() interface{}
}

// Notify dispatches a fire-and-forget event.
func Notify(ctx context.Context, target Target, e Event) {
	target.Dispatch(ctx, e)
}
