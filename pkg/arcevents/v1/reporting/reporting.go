// Package reporting holds the error report notification.
package reporting

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
)

// ErrorEvent reports an application error.
type ErrorEvent struct {
	events.Base
	description string
	err         error
	fatal       bool
	component   string
}

// NewErrorEvent requires description. err may be nil.
func NewErrorEvent(description string, err error, fatal bool, component string) (*ErrorEvent, error) {
	if e := argutil.String("description", description); e != nil {
		return nil, e
	}
	return &ErrorEvent{
		Base:        events.NewBase(eventtypes.ReportingError),
		description: description,
		err:         err,
		fatal:       fatal,
		component:   component,
	}, nil
}

func (e *ErrorEvent) Description() string { return e.description }
func (e *ErrorEvent) Err() error          { return e.err }
func (e *ErrorEvent) Fatal() bool         { return e.fatal }
func (e *ErrorEvent) Component() string   { return e.component }

// Detail implements events.Detailer.
func (e *ErrorEvent) Detail() interface{} {
	d := map[string]interface{}{"description": e.description, "fatal": e.fatal, "component": e.component}
	if e.err != nil {
		d["error"] = e.err.Error()
	}
	return d
}

// Error reports description.
func Error(ctx context.Context, target events.Target, description string, err error, fatal bool, component string) error {
	e, cerr := NewErrorEvent(description, err, fatal, component)
	if cerr != nil {
		return cerr
	}
	events.Notify(ctx, target, e)
	return nil
}
