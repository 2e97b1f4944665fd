package datastore

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

func (s *Store) attachProjects(on listen) {
	on(eventtypes.ProjectRead, events.Handle(func(_ context.Context, e *events.ReadEvent[types.Project]) {
		item, err := s.projects.get(e.ID(), e.Rev())
		answer[*types.Project](e, item, err)
	}))

	on(eventtypes.ProjectUpdate, events.Handle(func(ctx context.Context, e *events.UpdateEvent[types.Project]) {
		rec, err := s.projects.put(e.Item())
		if answer[events.ChangeRecord[types.Project]](e, rec, err) {
			s.reported(model.NotifyProjectUpdated(ctx, s.notifier(), &rec))
		}
	}))

	on(eventtypes.ProjectUpdateBulk, events.Handle(func(ctx context.Context, e *events.UpdateBulkEvent[types.Project]) {
		records, err := s.projects.putAll(e.Items())
		for i := range records {
			s.reported(model.NotifyProjectUpdated(ctx, s.notifier(), &records[i]))
		}
		answer[[]events.ChangeRecord[types.Project]](e, records, err)
	}))

	on(eventtypes.ProjectDelete, events.Handle(func(ctx context.Context, e *events.DeleteEvent) {
		rec, err := s.projects.remove(e.ID(), e.Rev())
		if answer[events.DeletedRecord](e, rec, err) {
			s.reported(model.NotifyProjectDeleted(ctx, s.notifier(), rec.ID, rec.Rev))
		}
	}))

	on(eventtypes.ProjectList, events.Handle(func(_ context.Context, e *events.ListEvent[types.Project]) {
		e.Resolve(s.projects.list(e.Options()))
	}))

	on(eventtypes.ProjectListAll, events.Handle(func(_ context.Context, e *model.ListAllProjectsEvent) {
		keys := make(map[string]struct{}, len(e.Keys()))
		for _, k := range e.Keys() {
			keys[k] = struct{}{}
		}
		e.Resolve(s.projects.filter(func(p *types.Project) bool {
			if len(keys) == 0 {
				return true
			}
			_, ok := keys[p.ID]
			return ok
		}))
	}))
}
