package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// URLIndexerUpdateEvent indexes the URLs of requests.
type URLIndexerUpdateEvent struct {
	events.Base
	events.Request[events.Void]
	requests []*types.IndexableRequest
}

// NewURLIndexerUpdateEvent requires a list without nil entries.
func NewURLIndexerUpdateEvent(requests []*types.IndexableRequest) (*URLIndexerUpdateEvent, error) {
	if err := argutil.Objects("requests", requests); err != nil {
		return nil, err
	}
	return &URLIndexerUpdateEvent{Base: events.NewBase(eventtypes.URLIndexerUpdate), requests: requests}, nil
}

// Requests returns the requests to index.
func (e *URLIndexerUpdateEvent) Requests() []*types.IndexableRequest { return e.requests }

// Detail implements events.Detailer.
func (e *URLIndexerUpdateEvent) Detail() interface{} {
	return map[string]interface{}{"count": len(e.requests)}
}

// UpdateURLIndex indexes requests.
func UpdateURLIndex(ctx context.Context, target events.Target, requests []*types.IndexableRequest) error {
	e, err := NewURLIndexerUpdateEvent(requests)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// URLIndexerQueryEvent searches the URL index.
type URLIndexerQueryEvent struct {
	events.Base
	events.Request[types.IndexQueryResult]
	term string
	opts types.IndexQueryOptions
}

// NewURLIndexerQueryEvent requires term. A nil opts searches every store.
func NewURLIndexerQueryEvent(term string, opts *types.IndexQueryOptions) (*URLIndexerQueryEvent, error) {
	if err := argutil.String("term", term); err != nil {
		return nil, err
	}
	e := &URLIndexerQueryEvent{Base: events.NewBase(eventtypes.URLIndexerQuery), term: term}
	if opts != nil {
		e.opts = *opts
	}
	return e, nil
}

func (e *URLIndexerQueryEvent) Term() string                     { return e.term }
func (e *URLIndexerQueryEvent) Options() types.IndexQueryOptions { return e.opts }

// Detail implements events.Detailer.
func (e *URLIndexerQueryEvent) Detail() interface{} {
	return map[string]interface{}{"term": e.term, "type": e.opts.Type, "detailed": e.opts.Detailed}
}

// QueryURLIndex returns the ids of requests whose URL matches term.
func QueryURLIndex(ctx context.Context, target events.Target, term string, opts *types.IndexQueryOptions) (types.IndexQueryResult, error) {
	e, err := NewURLIndexerQueryEvent(term, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[types.IndexQueryResult](ctx, target, e)
}
