// Package requests holds the request editor events: sending and aborting
// the edited request and the editor's state notifications.
package requests

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// SendEvent asks the application to send an editor request.
type SendEvent = events.ValueEvent[types.EditorRequest]

// Send asks the application to send request.
func Send(ctx context.Context, target events.Target, request *types.EditorRequest) error {
	e, err := events.NewValueEvent(eventtypes.RequestSend, "request", request)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// AbortEvent stops sending a request.
type AbortEvent struct {
	events.Base
	id string
}

// ID returns the editor request id.
func (e *AbortEvent) ID() string { return e.id }

// Detail implements events.Detailer.
func (e *AbortEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id}
}

// Abort stops the request id.
func Abort(ctx context.Context, target events.Target, id string) error {
	if err := argutil.String("id", id); err != nil {
		return err
	}
	events.Notify(ctx, target, &AbortEvent{Base: events.NewBase(eventtypes.RequestAbort), id: id})
	return nil
}

// ChangeEvent announces a new value of an editor property: the URL or the
// content type, depending on its type. Empty values are valid.
type ChangeEvent struct {
	events.Base
	value string
}

// Value returns the new value.
func (e *ChangeEvent) Value() string { return e.value }

// Detail implements events.Detailer.
func (e *ChangeEvent) Detail() interface{} {
	return map[string]interface{}{"value": e.value}
}

// NotifyURLChanged announces that the edited URL is now url.
func NotifyURLChanged(ctx context.Context, target events.Target, url string) {
	events.Notify(ctx, target, &ChangeEvent{Base: events.NewBase(eventtypes.RequestStateURLChange), value: url})
}

// NotifyContentTypeChanged announces that the edited content type is now
// contentType.
func NotifyContentTypeChanged(ctx context.Context, target events.Target, contentType string) {
	events.Notify(ctx, target, &ChangeEvent{Base: events.NewBase(eventtypes.RequestStateContentTypeChange), value: contentType})
}
