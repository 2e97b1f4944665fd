// Package transport holds the notifications exchanged between the request
// editor and the HTTP transport. The transport answers through the
// response notification rather than a result slot.
package transport

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// RequestEvent carries an editor request. Its type is either request
// (the editor asks the app to run it) or transport (the app hands it to
// the HTTP client).
type RequestEvent struct {
	events.Base
	request *types.EditorRequest
	config  *types.TransportConfig
}

func newRequestEvent(t events.EventType, request *types.EditorRequest, config *types.TransportConfig) (*RequestEvent, error) {
	if err := argutil.Object("request", request); err != nil {
		return nil, err
	}
	return &RequestEvent{Base: events.NewBase(t), request: request, config: config}, nil
}

// NewRequestEvent requires request.
func NewRequestEvent(request *types.EditorRequest) (*RequestEvent, error) {
	return newRequestEvent(eventtypes.TransportRequest, request, nil)
}

// NewTransportEvent requires request. config may be nil.
func NewTransportEvent(request *types.EditorRequest, config *types.TransportConfig) (*RequestEvent, error) {
	return newRequestEvent(eventtypes.TransportTransport, request, config)
}

func (e *RequestEvent) Request() *types.EditorRequest  { return e.request }
func (e *RequestEvent) Config() *types.TransportConfig { return e.config }

// Detail implements events.Detailer.
func (e *RequestEvent) Detail() interface{} {
	d := map[string]interface{}{"id": e.request.ID}
	if e.request.Request != nil {
		d["url"] = e.request.Request.URL
		d["method"] = e.request.Request.Method
	}
	return d
}

// Request asks the application to run request.
func Request(ctx context.Context, target events.Target, request *types.EditorRequest) error {
	e, err := NewRequestEvent(request)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// Transport hands request to the HTTP transport.
func Transport(ctx context.Context, target events.Target, request *types.EditorRequest, config *types.TransportConfig) error {
	e, err := NewTransportEvent(request, config)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// ResponseEvent carries the outcome of a transport call.
type ResponseEvent = events.ValueEvent[types.TransportResult]

// Response announces that the transport finished result.
func Response(ctx context.Context, target events.Target, result *types.TransportResult) error {
	e, err := events.NewValueEvent(eventtypes.TransportResponse, "result", result)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// AbortEvent cancels a running request.
type AbortEvent struct {
	events.Base
	id string
}

// ID returns the request to cancel.
func (e *AbortEvent) ID() string { return e.id }

// Detail implements events.Detailer.
func (e *AbortEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id}
}

// Abort cancels the running request id.
func Abort(ctx context.Context, target events.Target, id string) error {
	if err := argutil.String("id", id); err != nil {
		return err
	}
	events.Notify(ctx, target, &AbortEvent{Base: events.NewBase(eventtypes.TransportAbort), id: id})
	return nil
}
