package registry

import (
	"fmt"
	"sort"
	"sync"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
)

// Entry pairs a namespace path with its event type.
type Entry struct {
	Path string           `json:"path" yaml:"path"`
	Type events.EventType `json:"type" yaml:"type"`
}

// StaticRegistry maps namespace paths (e.g. "Model.Project.update") to event
// types. Both sides are unique: two paths can never share a type, otherwise
// unrelated listeners would receive each other's events.
type StaticRegistry struct {
	byPath map[string]events.EventType
	byType map[events.EventType]string
	mu     sync.RWMutex
}

// NewStaticRegistry creates an empty registry.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{
		byPath: make(map[string]events.EventType),
		byType: make(map[events.EventType]string),
	}
}

// Register adds path → t. It fails on empty input, on a path that is
// already registered and on a type another path already uses.
func (r *StaticRegistry) Register(path string, t events.EventType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if path == "" {
		return arcerrors.NewConfigError("event type registration error: path cannot be empty", nil)
	}
	if t == "" {
		return arcerrors.NewConfigError(fmt.Sprintf("event type registration error for '%s': type cannot be empty", path), nil)
	}
	if _, exists := r.byPath[path]; exists {
		return arcerrors.NewConfigError(fmt.Sprintf("event type registration error: duplicate path '%s'", path), nil)
	}
	if owner, exists := r.byType[t]; exists {
		return arcerrors.NewConfigError(fmt.Sprintf("event type registration error: '%s' collides with '%s' on type '%s'", path, owner, t), nil)
	}

	r.byPath[path] = t
	r.byType[t] = path
	return nil
}

// Get returns the type registered for path, or a TypeNotFoundError.
func (r *StaticRegistry) Get(path string) (events.EventType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.byPath[path]
	if !exists {
		return "", arcerrors.NewTypeNotFoundError(path)
	}
	return t, nil
}

// PathOf returns the path that owns t.
func (r *StaticRegistry) PathOf(t events.EventType) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.byType[t]
	return path, ok
}

// List returns every entry sorted by path.
func (r *StaticRegistry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.byPath))
	for path, t := range r.byPath {
		entries = append(entries, Entry{Path: path, Type: t})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// Types returns every registered type, sorted.
func (r *StaticRegistry) Types() []events.EventType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]events.EventType, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Len returns the number of registered entries.
func (r *StaticRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byPath)
}

// Clone returns an independent copy, used to layer extension manifests on
// top of the built-in catalog without mutating it.
func (r *StaticRegistry) Clone() *StaticRegistry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewStaticRegistry()
	for path, t := range r.byPath {
		c.byPath[path] = t
		c.byType[t] = path
	}
	return c
}

// --- Default global registry, filled by init() of the catalog package ---

var globalRegistry = NewStaticRegistry()

// Register adds an entry to the global registry. It panics on error:
// a collision in the built-in catalog is a programming mistake.
func Register(path string, t events.EventType) {
	if err := globalRegistry.Register(path, t); err != nil {
		panic(fmt.Errorf("failed to register event type '%s' globally: %w", path, err))
	}
}

// Default returns the global registry.
func Default() *StaticRegistry {
	return globalRegistry
}

// CheckUnique reports every collision in entries: duplicated paths and
// types shared by more than one path. It returns nil when all are distinct.
func CheckUnique(entries []Entry) error {
	seenPath := make(map[string]struct{}, len(entries))
	owners := make(map[events.EventType]string, len(entries))
	var problems []string
	for _, e := range entries {
		if _, dup := seenPath[e.Path]; dup {
			problems = append(problems, fmt.Sprintf("duplicate path '%s'", e.Path))
			continue
		}
		seenPath[e.Path] = struct{}{}
		if owner, dup := owners[e.Type]; dup {
			problems = append(problems, fmt.Sprintf("'%s' and '%s' share type '%s'", owner, e.Path, e.Type))
			continue
		}
		owners[e.Type] = e.Path
	}
	if len(problems) == 0 {
		return nil
	}
	msg := fmt.Sprintf("%d event type collision(s)", len(problems))
	for _, p := range problems {
		msg += "\n- " + p
	}
	return arcerrors.NewValidationError(msg, nil)
}
