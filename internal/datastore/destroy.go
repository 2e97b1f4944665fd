package datastore

import (
	"context"
	"fmt"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
)

// owned lists the stores this package keeps, in the order "all" clears
// them.
var owned = []string{
	model.StoreProjects,
	model.StoreSaved,
	model.StoreHistory,
	model.StoreEnvironments,
	model.StoreVariables,
	model.StoreHostRules,
	model.StoreAuthData,
	model.StoreCookies,
}

// clearStore empties one owned store.
func (s *Store) clearStore(name string) {
	switch name {
	case model.StoreProjects:
		s.projects.clear()
	case model.StoreSaved:
		s.saved.clear()
	case model.StoreHistory:
		s.history.clear()
	case model.StoreEnvironments:
		s.environments.clear()
		s.selectEnvironment(DefaultEnvironment)
	case model.StoreVariables:
		s.variables.clear()
	case model.StoreHostRules:
		s.hostRules.clear()
	case model.StoreAuthData:
		s.authData.clear()
	case model.StoreCookies:
		s.cookies.clear()
	}
}

func isOwned(name string) bool {
	for _, o := range owned {
		if o == name {
			return true
		}
	}
	return false
}

// foreign stores are kept by other components. They are skipped so that
// their owners can answer the same destroy request; a request naming only
// foreign stores is left unanswered here. Unknown names reject it.
var foreign = map[string]bool{
	model.StoreURLHistory:    true,
	model.StoreCertificates:  true,
	model.StoreRestAPIs:      true,
	model.StoreWebsocketURLs: true,
}

func (s *Store) attachDestroy(on listen) {
	on(eventtypes.ModelDestroy, events.Handle(func(ctx context.Context, e *model.DestroyEvent) {
		var names []string
		for _, name := range e.Stores() {
			switch {
			case name == model.StoreAll:
				names = append(names, owned...)
			case isOwned(name):
				names = append(names, name)
			case foreign[name]:
			default:
				e.Reject(fmt.Errorf("unknown data store '%s'", name))
				return
			}
		}
		if len(names) == 0 {
			return
		}
		done := make(map[string]bool, len(names))
		for _, name := range names {
			if done[name] {
				continue
			}
			done[name] = true
			s.clearStore(name)
			s.log.Infof("Destroyed data store '%s'", name)
			s.reported(model.NotifyDestroyed(ctx, s.notifier(), name))
		}
		e.Resolve(events.Void{})
	}))
}
