// Package datastore is an in-memory data store that answers the model and
// session cookie requests dispatched on a target. Every mutation gets a
// new revision and is announced with the matching state notification.
package datastore

import (
	"context"
	"sync"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// DefaultEnvironment is the environment selected until another one is.
const DefaultEnvironment = "default"

// Store holds every collection. It is safe for concurrent use.
type Store struct {
	log arclog.Logger

	projects     *collection[types.Project, *types.Project]
	saved        *collection[types.Request, *types.Request]
	history      *collection[types.Request, *types.Request]
	environments *collection[types.Environment, *types.Environment]
	variables    *collection[types.Variable, *types.Variable]
	hostRules    *collection[types.HostRule, *types.HostRule]
	authData     *collection[types.AuthData, *types.AuthData]
	cookies      *cookieJar

	mu          sync.Mutex
	target      events.ListenerTarget
	environment string
	removers    []func()
}

// New creates an empty store. A nil logger panics.
func New(log arclog.Logger) *Store {
	if log == nil {
		panic("datastore.New requires a non-nil logger")
	}
	return &Store{
		log:          log.With("component", "DataStore"),
		projects:     newCollection[types.Project](),
		saved:        newCollection[types.Request](),
		history:      newCollection[types.Request](),
		environments: newCollection[types.Environment](),
		variables:    newCollection[types.Variable](),
		hostRules:    newCollection[types.HostRule](),
		authData:     newCollection[types.AuthData](),
		cookies:      newCookieJar(),
		environment:  DefaultEnvironment,
	}
}

// Attach registers the store's listeners on target and dispatches its
// state notifications there. A store serves one target at a time;
// attaching again detaches from the previous one first.
func (s *Store) Attach(target events.ListenerTarget) {
	s.Detach()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	on := func(t events.EventType, l events.Listener) {
		s.removers = append(s.removers, target.AddListener(t, l))
	}
	s.attachProjects(on)
	s.attachRequests(on)
	s.attachEnvironments(on)
	s.attachHostRules(on)
	s.attachAuthData(on)
	s.attachCookies(on)
	s.attachDestroy(on)
	s.log.Debugf("Data store attached with %d listeners", len(s.removers))
}

// Detach removes every listener Attach registered.
func (s *Store) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.target = nil
}

type listen func(t events.EventType, l events.Listener)

// notifier returns the target notifications go to.
func (s *Store) notifier() events.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target == nil {
		return events.TargetFunc(func(context.Context, events.Event) {})
	}
	return s.target
}

// reported logs a failed state notification. Notifications only fail on
// invalid arguments, which would be a store bug.
func (s *Store) reported(err error) {
	if err != nil {
		s.log.Errorf("Failed to dispatch state notification: %v", err)
	}
}

// resolver is the answering side of a request event.
type resolver[T any] interface {
	Resolve(v T)
	Reject(err error)
}

// answer resolves r with v, or rejects it when err is set. It reports
// whether the request succeeded.
func answer[T any](r resolver[T], v T, err error) bool {
	if err != nil {
		r.Reject(err)
		return false
	}
	r.Resolve(v)
	return true
}
