package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ListURLHistory returns one page of the URL history.
func ListURLHistory(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.URLHistory], error) {
	return list[types.URLHistory](ctx, target, eventtypes.URLHistoryList, opts)
}

// URLHistoryInsertEvent records a use of url.
type URLHistoryInsertEvent struct {
	events.Base
	events.Request[events.ChangeRecord[types.URLHistory]]
	url string
}

// NewURLHistoryInsertEvent requires url.
func NewURLHistoryInsertEvent(url string) (*URLHistoryInsertEvent, error) {
	if err := argutil.String("url", url); err != nil {
		return nil, err
	}
	return &URLHistoryInsertEvent{Base: events.NewBase(eventtypes.URLHistoryInsert), url: url}, nil
}

// URL returns the used URL.
func (e *URLHistoryInsertEvent) URL() string { return e.url }

// Detail implements events.Detailer.
func (e *URLHistoryInsertEvent) Detail() interface{} {
	return map[string]interface{}{"url": e.url}
}

// InsertURLHistory records a use of url and returns the updated entry.
func InsertURLHistory(ctx context.Context, target events.Target, url string) (events.ChangeRecord[types.URLHistory], error) {
	e, err := NewURLHistoryInsertEvent(url)
	if err != nil {
		return events.ChangeRecord[types.URLHistory]{}, err
	}
	return events.Call[events.ChangeRecord[types.URLHistory]](ctx, target, e)
}

// QueryURLHistory returns the history entries matching term.
func QueryURLHistory(ctx context.Context, target events.Target, term string) ([]*types.URLHistory, error) {
	e, err := events.NewQueryEvent[types.URLHistory](eventtypes.URLHistoryQuery, term, false)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.URLHistory](ctx, target, e)
}

// DeleteURLHistory removes the entry id.
func DeleteURLHistory(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.URLHistoryDelete, id, rev)
}

// ClearURLHistory removes every entry.
func ClearURLHistory(ctx context.Context, target events.Target) error {
	return clearStore(ctx, target, eventtypes.URLHistoryClear)
}

// NotifyURLHistoryUpdated announces a stored entry.
func NotifyURLHistoryUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.URLHistory]) error {
	return notifyChanged(ctx, target, eventtypes.URLHistoryStateUpdate, record)
}

// NotifyURLHistoryDeleted announces a removed entry.
func NotifyURLHistoryDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.URLHistoryStateDelete, id, rev)
}
