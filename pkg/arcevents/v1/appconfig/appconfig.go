// Package appconfig holds the events that read and change the
// application configuration.
package appconfig

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadAllEvent requests the whole configuration document.
type ReadAllEvent struct {
	events.Base
	events.Request[types.Config]
}

// NewReadAllEvent returns a ReadAllEvent.
func NewReadAllEvent() *ReadAllEvent {
	return &ReadAllEvent{Base: events.NewBase(eventtypes.ConfigReadAll)}
}

// ReadAll returns the configuration, nil when no store answered.
func ReadAll(ctx context.Context, target events.Target) (types.Config, error) {
	return events.Call[types.Config](ctx, target, NewReadAllEvent())
}

// UpdateEvent sets one configuration key. Keys are dot paths, e.g.
// "request.timeout".
type UpdateEvent struct {
	events.Base
	events.Request[events.Void]
	key   string
	value interface{}
}

// NewUpdateEvent requires key. A nil value removes the key.
func NewUpdateEvent(key string, value interface{}) (*UpdateEvent, error) {
	if err := argutil.String("key", key); err != nil {
		return nil, err
	}
	return &UpdateEvent{Base: events.NewBase(eventtypes.ConfigUpdate), key: key, value: value}, nil
}

func (e *UpdateEvent) Key() string        { return e.key }
func (e *UpdateEvent) Value() interface{} { return e.value }

// Detail implements events.Detailer.
func (e *UpdateEvent) Detail() interface{} {
	return map[string]interface{}{"key": e.key, "value": e.value}
}

// Update stores value under key.
func Update(ctx context.Context, target events.Target, key string, value interface{}) error {
	e, err := NewUpdateEvent(key, value)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// StateUpdateEvent announces a changed configuration key.
type StateUpdateEvent struct {
	events.Base
	key   string
	value interface{}
}

// NewStateUpdateEvent requires key.
func NewStateUpdateEvent(key string, value interface{}) (*StateUpdateEvent, error) {
	if err := argutil.String("key", key); err != nil {
		return nil, err
	}
	return &StateUpdateEvent{Base: events.NewBase(eventtypes.ConfigStateUpdate), key: key, value: value}, nil
}

func (e *StateUpdateEvent) Key() string        { return e.key }
func (e *StateUpdateEvent) Value() interface{} { return e.value }

// Detail implements events.Detailer.
func (e *StateUpdateEvent) Detail() interface{} {
	return map[string]interface{}{"key": e.key, "value": e.value}
}

// NotifyUpdated dispatches a StateUpdateEvent.
func NotifyUpdated(ctx context.Context, target events.Target, key string, value interface{}) error {
	e, err := NewStateUpdateEvent(key, value)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}
