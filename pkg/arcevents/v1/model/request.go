package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// Saved and history requests share one set of event types. Every request
// event names the store it targets.

type (
	requestRead       = events.ReadEvent[types.Request]
	requestReadBulk   = events.ReadBulkEvent[types.Request]
	requestUpdate     = events.UpdateEvent[types.Request]
	requestUpdateBulk = events.UpdateBulkEvent[types.Request]
	requestDelete     = events.DeleteEvent
	requestDeleteBulk = events.DeleteBulkEvent
	requestList       = events.ListEvent[types.Request]
	requestQuery      = events.QueryEvent[types.Request]
	requestStateDel   = events.StateDeleteEvent
)

type requestKind struct {
	kind types.RequestKind
}

// Kind returns the request store the event targets.
func (k requestKind) Kind() types.RequestKind { return k.kind }

func newRequestKind(kind types.RequestKind) (requestKind, error) {
	if !kind.Valid() {
		return requestKind{}, arcerrors.NewArgumentError("type", arcerrors.KindString)
	}
	return requestKind{kind: kind}, nil
}

// withKind adds the request kind to a shape's detail.
func withKind(detail interface{}, kind types.RequestKind) interface{} {
	out := map[string]interface{}{"type": kind}
	if m, ok := detail.(map[string]interface{}); ok {
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	out["options"] = detail
	return out
}

// RequestReadEvent reads one request.
type RequestReadEvent struct {
	*requestRead
	requestKind
}

// NewRequestReadEvent requires kind and id.
func NewRequestReadEvent(kind types.RequestKind, id, rev string) (*RequestReadEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewReadEvent[types.Request](eventtypes.RequestRead, id, rev)
	if err != nil {
		return nil, err
	}
	return &RequestReadEvent{requestRead: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestReadEvent) Detail() interface{} { return withKind(e.requestRead.Detail(), e.kind) }

// ReadRequest returns the request id from the kind store.
func ReadRequest(ctx context.Context, target events.Target, kind types.RequestKind, id, rev string) (*types.Request, error) {
	e, err := NewRequestReadEvent(kind, id, rev)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.Request](ctx, target, e)
}

// RequestReadBulkEvent reads several requests.
type RequestReadBulkEvent struct {
	*requestReadBulk
	requestKind
}

// NewRequestReadBulkEvent requires kind and ids.
func NewRequestReadBulkEvent(kind types.RequestKind, ids []string) (*RequestReadBulkEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewReadBulkEvent[types.Request](eventtypes.RequestReadBulk, ids)
	if err != nil {
		return nil, err
	}
	return &RequestReadBulkEvent{requestReadBulk: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestReadBulkEvent) Detail() interface{} {
	return withKind(e.requestReadBulk.Detail(), e.kind)
}

// ReadRequestBulk returns the requests ids from the kind store.
func ReadRequestBulk(ctx context.Context, target events.Target, kind types.RequestKind, ids []string) ([]*types.Request, error) {
	e, err := NewRequestReadBulkEvent(kind, ids)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.Request](ctx, target, e)
}

// RequestUpdateEvent stores one request.
type RequestUpdateEvent struct {
	*requestUpdate
	requestKind
}

// NewRequestUpdateEvent requires kind and request.
func NewRequestUpdateEvent(kind types.RequestKind, request *types.Request) (*RequestUpdateEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewUpdateEvent(eventtypes.RequestUpdate, request)
	if err != nil {
		return nil, err
	}
	return &RequestUpdateEvent{requestUpdate: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestUpdateEvent) Detail() interface{} {
	return withKind(e.requestUpdate.Detail(), e.kind)
}

// UpdateRequest stores request in the kind store.
func UpdateRequest(ctx context.Context, target events.Target, kind types.RequestKind, request *types.Request) (events.ChangeRecord[types.Request], error) {
	e, err := NewRequestUpdateEvent(kind, request)
	if err != nil {
		return events.ChangeRecord[types.Request]{}, err
	}
	return events.Call[events.ChangeRecord[types.Request]](ctx, target, e)
}

// RequestUpdateBulkEvent stores several requests.
type RequestUpdateBulkEvent struct {
	*requestUpdateBulk
	requestKind
}

// NewRequestUpdateBulkEvent requires kind and requests.
func NewRequestUpdateBulkEvent(kind types.RequestKind, requests []*types.Request) (*RequestUpdateBulkEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewUpdateBulkEvent(eventtypes.RequestUpdateBulk, requests)
	if err != nil {
		return nil, err
	}
	return &RequestUpdateBulkEvent{requestUpdateBulk: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestUpdateBulkEvent) Detail() interface{} {
	return withKind(e.requestUpdateBulk.Detail(), e.kind)
}

// UpdateRequestBulk stores requests in the kind store.
func UpdateRequestBulk(ctx context.Context, target events.Target, kind types.RequestKind, requests []*types.Request) ([]events.ChangeRecord[types.Request], error) {
	e, err := NewRequestUpdateBulkEvent(kind, requests)
	if err != nil {
		return nil, err
	}
	return events.Call[[]events.ChangeRecord[types.Request]](ctx, target, e)
}

// RequestDeleteEvent removes one request.
type RequestDeleteEvent struct {
	*requestDelete
	requestKind
}

// NewRequestDeleteEvent requires kind and id.
func NewRequestDeleteEvent(kind types.RequestKind, id, rev string) (*RequestDeleteEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewDeleteEvent(eventtypes.RequestDelete, id, rev)
	if err != nil {
		return nil, err
	}
	return &RequestDeleteEvent{requestDelete: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestDeleteEvent) Detail() interface{} {
	return withKind(e.requestDelete.Detail(), e.kind)
}

// DeleteRequest removes the request id from the kind store.
func DeleteRequest(ctx context.Context, target events.Target, kind types.RequestKind, id, rev string) (events.DeletedRecord, error) {
	e, err := NewRequestDeleteEvent(kind, id, rev)
	if err != nil {
		return events.DeletedRecord{}, err
	}
	return events.Call[events.DeletedRecord](ctx, target, e)
}

// RequestDeleteBulkEvent removes several requests.
type RequestDeleteBulkEvent struct {
	*requestDeleteBulk
	requestKind
}

// NewRequestDeleteBulkEvent requires kind and ids.
func NewRequestDeleteBulkEvent(kind types.RequestKind, ids []string) (*RequestDeleteBulkEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, err := events.NewDeleteBulkEvent(eventtypes.RequestDeleteBulk, ids)
	if err != nil {
		return nil, err
	}
	return &RequestDeleteBulkEvent{requestDeleteBulk: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestDeleteBulkEvent) Detail() interface{} {
	return withKind(e.requestDeleteBulk.Detail(), e.kind)
}

// DeleteRequestBulk removes the requests ids from the kind store.
func DeleteRequestBulk(ctx context.Context, target events.Target, kind types.RequestKind, ids []string) ([]events.DeletedRecord, error) {
	e, err := NewRequestDeleteBulkEvent(kind, ids)
	if err != nil {
		return nil, err
	}
	return events.Call[[]events.DeletedRecord](ctx, target, e)
}

// RequestUndeleteBulkEvent restores deleted requests.
type RequestUndeleteBulkEvent struct {
	events.Base
	events.Request[[]events.ChangeRecord[types.Request]]
	requestKind
	records []events.DeletedRecord
}

// NewRequestUndeleteBulkEvent requires kind and the records the delete
// returned.
func NewRequestUndeleteBulkEvent(kind types.RequestKind, records []events.DeletedRecord) (*RequestUndeleteBulkEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	if err := argutil.Slice("records", records); err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, arcerrors.NewArgumentError("records", arcerrors.KindArray)
		}
	}
	return &RequestUndeleteBulkEvent{
		Base:        events.NewBase(eventtypes.RequestUndeleteBulk),
		requestKind: k,
		records:     records,
	}, nil
}

// Records returns the records to restore.
func (e *RequestUndeleteBulkEvent) Records() []events.DeletedRecord { return e.records }

// Detail implements events.Detailer.
func (e *RequestUndeleteBulkEvent) Detail() interface{} {
	return map[string]interface{}{"type": e.kind, "records": e.records}
}

// UndeleteRequestBulk restores records in the kind store.
func UndeleteRequestBulk(ctx context.Context, target events.Target, kind types.RequestKind, records []events.DeletedRecord) ([]events.ChangeRecord[types.Request], error) {
	e, err := NewRequestUndeleteBulkEvent(kind, records)
	if err != nil {
		return nil, err
	}
	return events.Call[[]events.ChangeRecord[types.Request]](ctx, target, e)
}

// RequestListEvent lists one page of requests.
type RequestListEvent struct {
	*requestList
	requestKind
}

// NewRequestListEvent requires kind.
func NewRequestListEvent(kind types.RequestKind, opts events.ListOptions) (*RequestListEvent, error) {
	k, err := newRequestKind(kind)
	if err != nil {
		return nil, err
	}
	e, _ := events.NewListEvent[types.Request](eventtypes.RequestList, opts)
	return &RequestListEvent{requestList: e, requestKind: k}, nil
}

// Detail implements events.Detailer.
func (e *RequestListEvent) Detail() interface{} {
	return withKind(e.requestList.Detail(), e.kind)
}

// ListRequests returns one page of the kind store.
func ListRequests(ctx context.Context, target events.Target, kind types.RequestKind, opts events.ListOptions) (events.ListResult[types.Request], error) {
	e, err := NewRequestListEvent(kind, opts)
	if err != nil {
		return events.ListResult[types.Request]{}, err
	}
	return events.Call[events.ListResult[types.Request]](ctx, target, e)
}

// RequestQueryEvent searches requests. An empty kind searches both stores.
type RequestQueryEvent struct {
	*requestQuery
	requestKind
}

// NewRequestQueryEvent requires term.
func NewRequestQueryEvent(term string, kind types.RequestKind, detailed bool) (*RequestQueryEvent, error) {
	if kind != "" && !kind.Valid() {
		return nil, arcerrors.NewArgumentError("type", arcerrors.KindString)
	}
	e, err := events.NewQueryEvent[types.Request](eventtypes.RequestQuery, term, detailed)
	if err != nil {
		return nil, err
	}
	return &RequestQueryEvent{requestQuery: e, requestKind: requestKind{kind: kind}}, nil
}

// Detail implements events.Detailer.
func (e *RequestQueryEvent) Detail() interface{} {
	return withKind(e.requestQuery.Detail(), e.kind)
}

// QueryRequests searches requests for term.
func QueryRequests(ctx context.Context, target events.Target, term string, kind types.RequestKind, detailed bool) ([]*types.Request, error) {
	e, err := NewRequestQueryEvent(term, kind, detailed)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.Request](ctx, target, e)
}

// NotifyRequestUpdated announces a stored request. The kind is the
// record item's Type.
func NotifyRequestUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.Request]) error {
	return notifyChanged(ctx, target, eventtypes.RequestStateUpdate, record)
}

// RequestStateDeleteEvent announces a removed request.
type RequestStateDeleteEvent struct {
	*requestStateDel
	requestKind
}

// Detail implements events.Detailer.
func (e *RequestStateDeleteEvent) Detail() interface{} {
	return withKind(map[string]interface{}{"id": e.ID(), "rev": e.Rev()}, e.kind)
}

// NotifyRequestDeleted announces that the request id was removed from
// the kind store.
func NotifyRequestDeleted(ctx context.Context, target events.Target, kind types.RequestKind, id, rev string) error {
	k, err := newRequestKind(kind)
	if err != nil {
		return err
	}
	e, err := events.NewStateDeleteEvent(eventtypes.RequestStateDelete, id, rev)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, &RequestStateDeleteEvent{requestStateDel: e, requestKind: k})
	return nil
}
