package datastore

import (
	"context"
	"fmt"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// Variables name their environment by id. The default environment has no
// document and is named DefaultEnvironment.

func (s *Store) selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.environment
}

func (s *Store) selectEnvironment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.environment = id
}

// state returns the selected environment with its variables.
func (s *Store) state() (*types.EnvironmentState, error) {
	id := s.selected()
	state := &types.EnvironmentState{System: map[string]string{}}
	if id != DefaultEnvironment {
		env, err := s.environments.get(id, "")
		if err != nil {
			return nil, err
		}
		state.Environment = env
	}
	state.Variables = s.variables.filter(func(v *types.Variable) bool { return v.Environment == id })
	return state, nil
}

func (s *Store) attachEnvironments(on listen) {
	on(eventtypes.EnvironmentRead, events.Handle(func(_ context.Context, e *events.ReadEvent[types.Environment]) {
		item, err := s.environments.get(e.ID(), e.Rev())
		answer[*types.Environment](e, item, err)
	}))

	on(eventtypes.EnvironmentUpdate, events.Handle(func(ctx context.Context, e *events.UpdateEvent[types.Environment]) {
		rec, err := s.environments.put(e.Item())
		if answer[events.ChangeRecord[types.Environment]](e, rec, err) {
			s.reported(model.NotifyEnvironmentUpdated(ctx, s.notifier(), &rec))
		}
	}))

	// Deleting an environment removes its variables. Deleting the selected
	// one selects the default environment.
	on(eventtypes.EnvironmentDelete, events.Handle(func(ctx context.Context, e *events.DeleteEvent) {
		rec, err := s.environments.remove(e.ID(), e.Rev())
		if !answer[events.DeletedRecord](e, rec, err) {
			return
		}
		s.reported(model.NotifyEnvironmentDeleted(ctx, s.notifier(), rec.ID, rec.Rev))
		for _, v := range s.variables.filter(func(v *types.Variable) bool { return v.Environment == rec.ID }) {
			if vrec, err := s.variables.remove(v.ID, ""); err == nil {
				s.reported(model.NotifyVariableDeleted(ctx, s.notifier(), vrec.ID, vrec.Rev))
			}
		}
		if s.selected() == rec.ID {
			s.selectEnvironment(DefaultEnvironment)
			if state, err := s.state(); err == nil {
				s.reported(model.NotifyEnvironmentSelected(ctx, s.notifier(), state))
			}
		}
	}))

	on(eventtypes.EnvironmentList, events.Handle(func(_ context.Context, e *events.ListEvent[types.Environment]) {
		e.Resolve(s.environments.list(e.Options()))
	}))

	on(eventtypes.EnvironmentCurrent, events.Handle(func(_ context.Context, e *model.EnvironmentCurrentEvent) {
		state, err := s.state()
		answer[*types.EnvironmentState](e, state, err)
	}))

	on(eventtypes.EnvironmentSelect, events.Handle(func(ctx context.Context, e *model.EnvironmentSelectEvent) {
		id := e.ID()
		if id == "" {
			id = DefaultEnvironment
		}
		if id != DefaultEnvironment {
			if _, err := s.environments.get(id, ""); err != nil {
				e.Reject(fmt.Errorf("select environment: %w", err))
				return
			}
		}
		s.selectEnvironment(id)
		state, err := s.state()
		if answer[events.Void](e, events.Void{}, err) {
			s.reported(model.NotifyEnvironmentSelected(ctx, s.notifier(), state))
		}
	}))

	s.attachVariables(on)
}

func (s *Store) attachVariables(on listen) {
	on(eventtypes.VariableUpdate, events.Handle(func(ctx context.Context, e *events.UpdateEvent[types.Variable]) {
		v := *e.Item()
		if v.Environment == "" {
			v.Environment = s.selected()
		}
		rec, err := s.variables.put(&v)
		if answer[events.ChangeRecord[types.Variable]](e, rec, err) {
			s.reported(model.NotifyVariableUpdated(ctx, s.notifier(), &rec))
		}
	}))

	on(eventtypes.VariableDelete, events.Handle(func(ctx context.Context, e *events.DeleteEvent) {
		rec, err := s.variables.remove(e.ID(), e.Rev())
		if answer[events.DeletedRecord](e, rec, err) {
			s.reported(model.NotifyVariableDeleted(ctx, s.notifier(), rec.ID, rec.Rev))
		}
	}))

	on(eventtypes.VariableList, events.Handle(func(_ context.Context, e *model.VariableListEvent) {
		env := e.Environment()
		e.Resolve(page(s.variables.filter(func(v *types.Variable) bool { return v.Environment == env }), e.Options()))
	}))

	// Set updates the first variable with the name in the selected
	// environment, or creates an enabled one.
	on(eventtypes.VariableSet, events.Handle(func(ctx context.Context, e *model.VariableSetEvent) {
		env := s.selected()
		v := &types.Variable{Environment: env, Name: e.Name(), Enabled: true}
		if found := s.variables.filter(func(v *types.Variable) bool {
			return v.Environment == env && v.Name == e.Name()
		}); len(found) > 0 {
			v = found[0]
		}
		v.Value = e.Value()
		rec, err := s.variables.put(v)
		if answer[events.Void](e, events.Void{}, err) {
			s.reported(model.NotifyVariableUpdated(ctx, s.notifier(), &rec))
		}
	}))
}
