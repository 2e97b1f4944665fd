package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
)

// pathSegmentRegex matches one dotted path segment, e.g. "Project" or
// "appendRequest".
var pathSegmentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// typeRegex matches event type identifiers: lowercase, no separators, the
// way the built-in catalog spells them.
var typeRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// ValidateManifestStructure checks what the schema cannot express: path
// and type syntax, kinds and duplicates within the manifest. It returns
// every problem found.
func ValidateManifestStructure(m *Manifest) []error {
	var errs []error

	if !validPath(m.Namespace) {
		errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("namespace '%s' is not a dotted identifier path", m.Namespace), nil))
	}
	if len(m.Events) == 0 {
		errs = append(errs, arcerrors.NewValidationError("manifest must declare at least one event in 'events'", nil))
	}

	paths := make(map[string]int)
	types := make(map[string]int)
	for i, e := range m.Events {
		display := fmt.Sprintf("event %d", i)
		if e.Path != "" {
			display = fmt.Sprintf("event %d ('%s')", i, e.Path)
		}

		if !validPath(e.Path) {
			errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("%s: path is not a dotted identifier path", display), nil))
		}
		if !typeRegex.MatchString(e.Type) {
			errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("%s: type '%s' must be lowercase letters and digits", display, e.Type), nil))
		}
		if e.Kind != "" && e.Kind != KindAction && e.Kind != KindNotification {
			errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("%s: invalid kind '%s'", display, e.Kind), nil))
		}

		if first, dup := paths[e.Path]; dup && e.Path != "" {
			errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("%s: duplicate path, first declared by event %d", display, first), nil))
		} else {
			paths[e.Path] = i
		}
		if first, dup := types[e.Type]; dup && e.Type != "" {
			errs = append(errs, arcerrors.NewValidationError(fmt.Sprintf("%s: duplicate type '%s', first declared by event %d", display, e.Type, first), nil))
		} else {
			types[e.Type] = i
		}
	}
	return errs
}

func validPath(path string) bool {
	if path == "" {
		return false
	}
	for _, seg := range strings.Split(path, ".") {
		if !pathSegmentRegex.MatchString(seg) {
			return false
		}
	}
	return true
}

// Entries returns the registry entries m declares.
func (m *Manifest) Entries() []registry.Entry {
	entries := make([]registry.Entry, 0, len(m.Events))
	for _, e := range m.Events {
		entries = append(entries, registry.Entry{Path: m.FullPath(e), Type: events.EventType(e.Type)})
	}
	return entries
}

// ApplyManifests returns a copy of base extended with every manifest
// entry. Collisions with base or between manifests are all reported in a
// single ValidationError and base is never modified.
func ApplyManifests(base *registry.StaticRegistry, manifests ...*Manifest) (*registry.StaticRegistry, error) {
	combined := base.List()
	for _, m := range manifests {
		combined = append(combined, m.Entries()...)
	}
	if err := registry.CheckUnique(combined); err != nil {
		return nil, err
	}

	extended := base.Clone()
	for _, m := range manifests {
		for _, entry := range m.Entries() {
			if err := extended.Register(entry.Path, entry.Type); err != nil {
				return nil, arcerrors.NewValidationError(fmt.Sprintf("manifest '%s'", m.FilePath), err)
			}
		}
	}
	return extended, nil
}
