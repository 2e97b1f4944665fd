package datastore

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

func (s *Store) attachHostRules(on listen) {
	on(eventtypes.HostRulesUpdate, events.Handle(func(ctx context.Context, e *events.UpdateEvent[types.HostRule]) {
		rec, err := s.hostRules.put(e.Item())
		if answer[events.ChangeRecord[types.HostRule]](e, rec, err) {
			s.reported(model.NotifyHostRuleUpdated(ctx, s.notifier(), &rec))
		}
	}))

	on(eventtypes.HostRulesUpdateBulk, events.Handle(func(ctx context.Context, e *events.UpdateBulkEvent[types.HostRule]) {
		records, err := s.hostRules.putAll(e.Items())
		for i := range records {
			s.reported(model.NotifyHostRuleUpdated(ctx, s.notifier(), &records[i]))
		}
		answer[[]events.ChangeRecord[types.HostRule]](e, records, err)
	}))

	on(eventtypes.HostRulesDelete, events.Handle(func(ctx context.Context, e *events.DeleteEvent) {
		rec, err := s.hostRules.remove(e.ID(), e.Rev())
		if answer[events.DeletedRecord](e, rec, err) {
			s.reported(model.NotifyHostRuleDeleted(ctx, s.notifier(), rec.ID, rec.Rev))
		}
	}))

	on(eventtypes.HostRulesList, events.Handle(func(_ context.Context, e *events.ListEvent[types.HostRule]) {
		e.Resolve(s.hostRules.list(e.Options()))
	}))

	on(eventtypes.HostRulesClear, events.Handle(func(ctx context.Context, e *events.ClearEvent) {
		for _, rec := range s.hostRules.clear() {
			s.reported(model.NotifyHostRuleDeleted(ctx, s.notifier(), rec.ID, rec.Rev))
		}
		e.Resolve(events.Void{})
	}))
}
