package events

import "time"

// Envelope records one dispatch for observers outside the synchronous
// listener chain (journals, metrics).
type Envelope struct {
	// ID uniquely identifies this dispatch.
	ID string `json:"id"`
	// Type is the dispatched event's type.
	Type EventType `json:"type"`
	// Timestamp marks when the dispatch started.
	Timestamp time.Time `json:"timestamp"`
	// Listeners is the number of listeners that received the event.
	Listeners int `json:"listeners"`
	// Answered is set for request events a listener attached a result to.
	Answered bool `json:"answered,omitempty"`
	// Detail is the payload as returned by Detailer, nil otherwise.
	// Observers must treat it as read-only.
	Detail interface{} `json:"detail,omitempty"`
}

// Bus receives envelopes after each dispatch.
type Bus interface {
	// Emit publishes an envelope. Implementations must not block the
	// dispatcher for long; dropping is preferable to stalling.
	Emit(env Envelope)
}
