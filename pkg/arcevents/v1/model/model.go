// Package model holds the data-store events: one read/update/delete/list
// contract per stored entity, plus the state notifications the store
// dispatches after a mutation.
//
// Action functions return the store's answer. When no store listens they
// return the zero value and a nil error.
package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
)

// Store names accepted by Destroy.
const (
	StoreProjects      = "projects"
	StoreSaved         = "saved"
	StoreHistory       = "history"
	StoreURLHistory    = "url-history"
	StoreEnvironments  = "variables-environments"
	StoreVariables     = "variables"
	StoreHostRules     = "host-rules"
	StoreCertificates  = "client-certificates"
	StoreRestAPIs      = "rest-apis"
	StoreAuthData      = "auth-data"
	StoreCookies       = "cookies"
	StoreWebsocketURLs = "websocket-url-history"
	StoreAll           = "all"
)

// DestroyEvent asks the store to remove whole data stores.
type DestroyEvent struct {
	events.Base
	events.Request[events.Void]
	stores []string
}

// NewDestroyEvent requires a list of store names.
func NewDestroyEvent(stores []string) (*DestroyEvent, error) {
	if err := argutil.Strings("stores", stores); err != nil {
		return nil, err
	}
	return &DestroyEvent{Base: events.NewBase(eventtypes.ModelDestroy), stores: stores}, nil
}

// Stores returns the stores to remove.
func (e *DestroyEvent) Stores() []string { return e.stores }

// Detail implements events.Detailer.
func (e *DestroyEvent) Detail() interface{} {
	return map[string]interface{}{"stores": e.stores}
}

// Destroy removes stores.
func Destroy(ctx context.Context, target events.Target, stores []string) error {
	e, err := NewDestroyEvent(stores)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// DestroyedEvent announces that a store was removed.
type DestroyedEvent struct {
	events.Base
	store string
}

// Store returns the removed store.
func (e *DestroyedEvent) Store() string { return e.store }

// Detail implements events.Detailer.
func (e *DestroyedEvent) Detail() interface{} {
	return map[string]interface{}{"store": e.store}
}

// NotifyDestroyed announces that store was removed.
func NotifyDestroyed(ctx context.Context, target events.Target, store string) error {
	if err := argutil.String("store", store); err != nil {
		return err
	}
	events.Notify(ctx, target, &DestroyedEvent{Base: events.NewBase(eventtypes.ModelDestroyed), store: store})
	return nil
}

// notifyChanged dispatches a state update for record.
func notifyChanged[T any](ctx context.Context, target events.Target, t events.EventType, record *events.ChangeRecord[T]) error {
	e, err := events.NewStateUpdateEvent(t, record)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// notifyDeleted dispatches a state delete for id at rev.
func notifyDeleted(ctx context.Context, target events.Target, t events.EventType, id, rev string) error {
	e, err := events.NewStateDeleteEvent(t, id, rev)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

func read[T any](ctx context.Context, target events.Target, t events.EventType, id, rev string) (*T, error) {
	e, err := events.NewReadEvent[T](t, id, rev)
	if err != nil {
		return nil, err
	}
	return events.Call[*T](ctx, target, e)
}

func update[T any](ctx context.Context, target events.Target, t events.EventType, item *T) (events.ChangeRecord[T], error) {
	e, err := events.NewUpdateEvent(t, item)
	if err != nil {
		return events.ChangeRecord[T]{}, err
	}
	return events.Call[events.ChangeRecord[T]](ctx, target, e)
}

func updateBulk[T any](ctx context.Context, target events.Target, t events.EventType, items []*T) ([]events.ChangeRecord[T], error) {
	e, err := events.NewUpdateBulkEvent(t, items)
	if err != nil {
		return nil, err
	}
	return events.Call[[]events.ChangeRecord[T]](ctx, target, e)
}

func remove(ctx context.Context, target events.Target, t events.EventType, id, rev string) (events.DeletedRecord, error) {
	e, err := events.NewDeleteEvent(t, id, rev)
	if err != nil {
		return events.DeletedRecord{}, err
	}
	return events.Call[events.DeletedRecord](ctx, target, e)
}

func list[T any](ctx context.Context, target events.Target, t events.EventType, opts events.ListOptions) (events.ListResult[T], error) {
	e, _ := events.NewListEvent[T](t, opts)
	return events.Call[events.ListResult[T]](ctx, target, e)
}

func clearStore(ctx context.Context, target events.Target, t events.EventType) error {
	_, err := events.Call[events.Void](ctx, target, events.NewClearEvent(t))
	return err
}
