package events

import "github.com/arc-labs/arcevents/internal/argutil"

// The shapes below cover the read/update/delete/list/query/state events
// every data-store entity shares. Domain packages pick the event type and
// the entity type; the argument checks live here once.

// ReadEvent requests one entity by id, optionally at a given revision.
type ReadEvent[T any] struct {
	Base
	Request[*T]
	id  string
	rev string
}

// NewReadEvent requires id.
func NewReadEvent[T any](t EventType, id, rev string) (*ReadEvent[T], error) {
	if err := argutil.String("id", id); err != nil {
		return nil, err
	}
	return &ReadEvent[T]{Base: NewBase(t), id: id, rev: rev}, nil
}

// ID returns the requested entity id.
func (e *ReadEvent[T]) ID() string { return e.id }

// Rev returns the requested revision, empty for the latest.
func (e *ReadEvent[T]) Rev() string { return e.rev }

// Detail implements Detailer.
func (e *ReadEvent[T]) Detail() interface{} {
	return map[string]interface{}{"id": e.id, "rev": e.rev}
}

// ReadBulkEvent requests several entities by id.
type ReadBulkEvent[T any] struct {
	Base
	Request[[]*T]
	ids []string
}

// NewReadBulkEvent requires a list of non-empty ids.
func NewReadBulkEvent[T any](t EventType, ids []string) (*ReadBulkEvent[T], error) {
	if err := argutil.Strings("ids", ids); err != nil {
		return nil, err
	}
	return &ReadBulkEvent[T]{Base: NewBase(t), ids: ids}, nil
}

// IDs returns the requested ids.
func (e *ReadBulkEvent[T]) IDs() []string { return e.ids }

// Detail implements Detailer.
func (e *ReadBulkEvent[T]) Detail() interface{} {
	return map[string]interface{}{"ids": e.ids}
}

// UpdateEvent asks the store to create or update an entity.
type UpdateEvent[T any] struct {
	Base
	Request[ChangeRecord[T]]
	item *T
}

// NewUpdateEvent requires item.
func NewUpdateEvent[T any](t EventType, item *T) (*UpdateEvent[T], error) {
	if err := argutil.Object("item", item); err != nil {
		return nil, err
	}
	return &UpdateEvent[T]{Base: NewBase(t), item: item}, nil
}

// Item returns the entity to store.
func (e *UpdateEvent[T]) Item() *T { return e.item }

// Detail implements Detailer.
func (e *UpdateEvent[T]) Detail() interface{} {
	return map[string]interface{}{"item": e.item}
}

// UpdateBulkEvent asks the store to create or update several entities.
type UpdateBulkEvent[T any] struct {
	Base
	Request[[]ChangeRecord[T]]
	items []*T
}

// NewUpdateBulkEvent requires a list without nil entries.
func NewUpdateBulkEvent[T any](t EventType, items []*T) (*UpdateBulkEvent[T], error) {
	if err := argutil.Objects("items", items); err != nil {
		return nil, err
	}
	return &UpdateBulkEvent[T]{Base: NewBase(t), items: items}, nil
}

// Items returns the entities to store.
func (e *UpdateBulkEvent[T]) Items() []*T { return e.items }

// Detail implements Detailer.
func (e *UpdateBulkEvent[T]) Detail() interface{} {
	return map[string]interface{}{"items": e.items}
}

// DeleteEvent asks the store to remove an entity.
type DeleteEvent struct {
	Base
	Request[DeletedRecord]
	id  string
	rev string
}

// NewDeleteEvent requires id.
func NewDeleteEvent(t EventType, id, rev string) (*DeleteEvent, error) {
	if err := argutil.String("id", id); err != nil {
		return nil, err
	}
	return &DeleteEvent{Base: NewBase(t), id: id, rev: rev}, nil
}

// ID returns the id of the entity to remove.
func (e *DeleteEvent) ID() string { return e.id }

// Rev returns the expected current revision, empty for any.
func (e *DeleteEvent) Rev() string { return e.rev }

// Detail implements Detailer.
func (e *DeleteEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id, "rev": e.rev}
}

// DeleteBulkEvent asks the store to remove (or restore) several entities.
type DeleteBulkEvent struct {
	Base
	Request[[]DeletedRecord]
	ids []string
}

// NewDeleteBulkEvent requires a list of non-empty ids.
func NewDeleteBulkEvent(t EventType, ids []string) (*DeleteBulkEvent, error) {
	if err := argutil.Strings("ids", ids); err != nil {
		return nil, err
	}
	return &DeleteBulkEvent{Base: NewBase(t), ids: ids}, nil
}

// IDs returns the affected ids.
func (e *DeleteBulkEvent) IDs() []string { return e.ids }

// Detail implements Detailer.
func (e *DeleteBulkEvent) Detail() interface{} {
	return map[string]interface{}{"ids": e.ids}
}

// ListEvent requests one page of entities.
type ListEvent[T any] struct {
	Base
	Request[ListResult[T]]
	opts ListOptions
}

// NewListEvent never fails; it returns an error for signature symmetry
// with the other constructors.
func NewListEvent[T any](t EventType, opts ListOptions) (*ListEvent[T], error) {
	return &ListEvent[T]{Base: NewBase(t), opts: opts}, nil
}

// Limit returns the page size, 0 for the store default.
func (e *ListEvent[T]) Limit() int { return e.opts.Limit }

// NextPageToken returns the cursor of the page to read.
func (e *ListEvent[T]) NextPageToken() string { return e.opts.NextPageToken }

// Options returns the paging options.
func (e *ListEvent[T]) Options() ListOptions { return e.opts }

// Detail implements Detailer.
func (e *ListEvent[T]) Detail() interface{} { return e.opts }

// QueryEvent searches entities by a free-text term.
type QueryEvent[T any] struct {
	Base
	Request[[]*T]
	term     string
	detailed bool
}

// NewQueryEvent requires term.
func NewQueryEvent[T any](t EventType, term string, detailed bool) (*QueryEvent[T], error) {
	if err := argutil.String("term", term); err != nil {
		return nil, err
	}
	return &QueryEvent[T]{Base: NewBase(t), term: term, detailed: detailed}, nil
}

// Term returns the search term.
func (e *QueryEvent[T]) Term() string { return e.term }

// Detailed reports whether the store should search entity bodies too.
func (e *QueryEvent[T]) Detailed() bool { return e.detailed }

// Detail implements Detailer.
func (e *QueryEvent[T]) Detail() interface{} {
	return map[string]interface{}{"term": e.term, "detailed": e.detailed}
}

// ClearEvent asks the store to remove every entity of a kind.
type ClearEvent struct {
	Base
	Request[Void]
}

// NewClearEvent returns a ClearEvent of type t.
func NewClearEvent(t EventType) *ClearEvent {
	return &ClearEvent{Base: NewBase(t)}
}

// StateUpdateEvent notifies listeners that an entity changed.
type StateUpdateEvent[T any] struct {
	Base
	record *ChangeRecord[T]
}

// NewStateUpdateEvent requires a record.
func NewStateUpdateEvent[T any](t EventType, record *ChangeRecord[T]) (*StateUpdateEvent[T], error) {
	if err := argutil.Object("record", record); err != nil {
		return nil, err
	}
	return &StateUpdateEvent[T]{Base: NewBase(t), record: record}, nil
}

// Changed returns the change record.
func (e *StateUpdateEvent[T]) Changed() *ChangeRecord[T] { return e.record }

// Detail implements Detailer.
func (e *StateUpdateEvent[T]) Detail() interface{} { return e.record }

// StateDeleteEvent notifies listeners that an entity was removed.
type StateDeleteEvent struct {
	Base
	id  string
	rev string
}

// NewStateDeleteEvent requires id.
func NewStateDeleteEvent(t EventType, id, rev string) (*StateDeleteEvent, error) {
	if err := argutil.String("id", id); err != nil {
		return nil, err
	}
	return &StateDeleteEvent{Base: NewBase(t), id: id, rev: rev}, nil
}

// ID returns the removed entity's id.
func (e *StateDeleteEvent) ID() string { return e.id }

// Rev returns the revision of the removal.
func (e *StateDeleteEvent) Rev() string { return e.rev }

// Detail implements Detailer.
func (e *StateDeleteEvent) Detail() interface{} {
	return DeletedRecord{ID: e.id, Rev: e.rev}
}

// SignalEvent is a payload-free event, e.g. a clear notification.
type SignalEvent struct {
	Base
}

// NewSignalEvent returns a SignalEvent of type t.
func NewSignalEvent(t EventType) *SignalEvent {
	return &SignalEvent{Base: NewBase(t)}
}

// ValueEvent carries one required value and expects no result. Domain
// packages use it for notifications whose payload is a single entity.
type ValueEvent[T any] struct {
	Base
	value *T
}

// NewValueEvent requires value; name is the argument name used in the
// ArgumentError.
func NewValueEvent[T any](t EventType, name string, value *T) (*ValueEvent[T], error) {
	if err := argutil.Object(name, value); err != nil {
		return nil, err
	}
	return &ValueEvent[T]{Base: NewBase(t), value: value}, nil
}

// Value returns the carried value.
func (e *ValueEvent[T]) Value() *T { return e.value }

// Detail implements Detailer.
func (e *ValueEvent[T]) Detail() interface{} { return e.value }
