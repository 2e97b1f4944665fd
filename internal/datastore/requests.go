package datastore

import (
	"context"
	"errors"
	"strings"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// requests returns the collection of kind. Constructors reject unknown
// kinds, so anything else is history.
func (s *Store) requests(kind types.RequestKind) *collection[types.Request, *types.Request] {
	if kind == types.RequestSaved {
		return s.saved
	}
	return s.history
}

// withKind returns a copy of r stamped with the store it is written to.
func withKind(r *types.Request, kind types.RequestKind) *types.Request {
	c := *r
	c.Type = kind
	return &c
}

func (s *Store) attachRequests(on listen) {
	on(eventtypes.RequestRead, events.Handle(func(_ context.Context, e *model.RequestReadEvent) {
		item, err := s.requests(e.Kind()).get(e.ID(), e.Rev())
		answer[*types.Request](e, item, err)
	}))

	// Missing ids yield nil entries so results line up with the ids.
	on(eventtypes.RequestReadBulk, events.Handle(func(_ context.Context, e *model.RequestReadBulkEvent) {
		store := s.requests(e.Kind())
		items := make([]*types.Request, len(e.IDs()))
		for i, id := range e.IDs() {
			items[i], _ = store.get(id, "")
		}
		e.Resolve(items)
	}))

	on(eventtypes.RequestUpdate, events.Handle(func(ctx context.Context, e *model.RequestUpdateEvent) {
		rec, err := s.requests(e.Kind()).put(withKind(e.Item(), e.Kind()))
		if answer[events.ChangeRecord[types.Request]](e, rec, err) {
			s.reported(model.NotifyRequestUpdated(ctx, s.notifier(), &rec))
		}
	}))

	on(eventtypes.RequestUpdateBulk, events.Handle(func(ctx context.Context, e *model.RequestUpdateBulkEvent) {
		items := make([]*types.Request, len(e.Items()))
		for i, r := range e.Items() {
			items[i] = withKind(r, e.Kind())
		}
		records, err := s.requests(e.Kind()).putAll(items)
		for i := range records {
			s.reported(model.NotifyRequestUpdated(ctx, s.notifier(), &records[i]))
		}
		answer[[]events.ChangeRecord[types.Request]](e, records, err)
	}))

	on(eventtypes.RequestDelete, events.Handle(func(ctx context.Context, e *model.RequestDeleteEvent) {
		rec, err := s.requests(e.Kind()).remove(e.ID(), e.Rev())
		if answer[events.DeletedRecord](e, rec, err) {
			s.reported(model.NotifyRequestDeleted(ctx, s.notifier(), e.Kind(), rec.ID, rec.Rev))
		}
	}))

	// Unknown ids are skipped; the result lists what was deleted.
	on(eventtypes.RequestDeleteBulk, events.Handle(func(ctx context.Context, e *model.RequestDeleteBulkEvent) {
		store := s.requests(e.Kind())
		records := make([]events.DeletedRecord, 0, len(e.IDs()))
		for _, id := range e.IDs() {
			rec, err := store.remove(id, "")
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				e.Reject(err)
				return
			}
			records = append(records, rec)
			s.reported(model.NotifyRequestDeleted(ctx, s.notifier(), e.Kind(), rec.ID, rec.Rev))
		}
		e.Resolve(records)
	}))

	on(eventtypes.RequestUndeleteBulk, events.Handle(func(ctx context.Context, e *model.RequestUndeleteBulkEvent) {
		store := s.requests(e.Kind())
		records := make([]events.ChangeRecord[types.Request], 0, len(e.Records()))
		for _, deleted := range e.Records() {
			rec, err := store.restore(deleted)
			if err != nil {
				e.Reject(err)
				return
			}
			records = append(records, rec)
			s.reported(model.NotifyRequestUpdated(ctx, s.notifier(), &rec))
		}
		e.Resolve(records)
	}))

	on(eventtypes.RequestList, events.Handle(func(_ context.Context, e *model.RequestListEvent) {
		e.Resolve(s.requests(e.Kind()).list(e.Options()))
	}))

	on(eventtypes.RequestQuery, events.Handle(func(_ context.Context, e *model.RequestQueryEvent) {
		match := requestMatcher(e.Term(), e.Detailed())
		var found []*types.Request
		if e.Kind() == "" || e.Kind() == types.RequestSaved {
			found = append(found, s.saved.filter(match)...)
		}
		if e.Kind() == "" || e.Kind() == types.RequestHistory {
			found = append(found, s.history.filter(match)...)
		}
		if found == nil {
			found = []*types.Request{}
		}
		e.Resolve(found)
	}))
}

// requestMatcher matches term, case-insensitively, against the URL and the
// name of a request; detailed queries also search the description,
// headers and payload.
func requestMatcher(term string, detailed bool) func(*types.Request) bool {
	term = strings.ToLower(term)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), term) }
	return func(r *types.Request) bool {
		if contains(r.URL) || contains(r.Name) {
			return true
		}
		if !detailed {
			return false
		}
		if contains(r.Description) || contains(r.Payload) {
			return true
		}
		for _, h := range r.Headers {
			if contains(h.Name) || contains(h.Value) {
				return true
			}
		}
		return false
	}
}
