// Package process holds the notifications that drive the application's
// progress indicator.
package process

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
)

// Event describes a step of a long running process.
type Event struct {
	events.Base
	id      string
	message string
	err     error
}

func (e *Event) ID() string      { return e.id }
func (e *Event) Message() string { return e.message }
func (e *Event) Err() error      { return e.err }

// Detail implements events.Detailer.
func (e *Event) Detail() interface{} {
	d := map[string]interface{}{"id": e.id, "message": e.message}
	if e.err != nil {
		d["error"] = e.err.Error()
	}
	return d
}

// LoadingStart announces that the process id started.
func LoadingStart(ctx context.Context, target events.Target, id, message string) error {
	if err := argutil.First(
		argutil.String("id", id),
		argutil.String("message", message),
	); err != nil {
		return err
	}
	events.Notify(ctx, target, &Event{Base: events.NewBase(eventtypes.ProcessLoadingStart), id: id, message: message})
	return nil
}

// LoadingStop announces that the process id finished.
func LoadingStop(ctx context.Context, target events.Target, id string) error {
	if err := argutil.String("id", id); err != nil {
		return err
	}
	events.Notify(ctx, target, &Event{Base: events.NewBase(eventtypes.ProcessLoadingStop), id: id})
	return nil
}

// LoadingError announces that the process id failed with cause.
func LoadingError(ctx context.Context, target events.Target, id, message string, cause error) error {
	if err := argutil.First(
		argutil.String("id", id),
		argutil.String("message", message),
	); err != nil {
		return err
	}
	events.Notify(ctx, target, &Event{Base: events.NewBase(eventtypes.ProcessLoadingError), id: id, message: message, err: cause})
	return nil
}
