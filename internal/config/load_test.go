package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editorManifest = `
schemaVersion: "1.0.0"
namespace: Editor
description: Tab lifecycle of the request editor.
events:
  - path: Tab.open
    type: editortabopen
    kind: notification
  - path: Tab.close
    type: editortabclose
  - path: Tab.list
    type: editortablist
    kind: action
`

func TestLoadManifest(t *testing.T) {
	m, err := config.LoadManifest([]byte(editorManifest), "editor.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Editor", m.Namespace)
	assert.Equal(t, "editor.yaml", m.FilePath)
	require.Len(t, m.Events, 3)
	assert.Equal(t, "Editor.Tab.open", m.FullPath(m.Events[0]))
	assert.Equal(t, config.KindNotification, m.Events[1].GetKind(), "kind defaults to notification")
	assert.Equal(t, config.KindAction, m.Events[2].GetKind())

	entries := m.Entries()
	assert.Equal(t, registry.Entry{Path: "Editor.Tab.close", Type: "editortabclose"}, entries[1])
}

func TestLoadManifestErrors(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		contains string
	}{
		{"empty", "  \n", "manifest content cannot be empty"},
		{"unknown field", "schemaVersion: \"1.0.0\"\nnamespace: A\nowner: me\nevents:\n  - {path: x, type: ax}\n", "failed schema validation"},
		{"no events", "schemaVersion: \"1.0.0\"\nnamespace: A\nevents: []\n", "failed schema validation"},
		{"bad kind", "schemaVersion: \"1.0.0\"\nnamespace: A\nevents:\n  - {path: x, type: ax, kind: query}\n", "failed schema validation"},
		{"unsupported major", "schemaVersion: \"2.0.0\"\nnamespace: A\nevents:\n  - {path: x, type: ax}\n", "is not compatible with requirement 'v1'"},
		{"invalid version", "schemaVersion: latest\nnamespace: A\nevents:\n  - {path: x, type: ax}\n", "invalid 'schemaVersion' format"},
		{"bad namespace", "schemaVersion: \"1.0.0\"\nnamespace: A..B\nevents:\n  - {path: x, type: ax}\n", "namespace 'A..B' is not a dotted identifier path"},
		{"bad type", "schemaVersion: \"1.0.0\"\nnamespace: A\nevents:\n  - {path: x, type: A-x}\n", "type 'A-x' must be lowercase letters and digits"},
		{"duplicate path", "schemaVersion: \"1.0.0\"\nnamespace: A\nevents:\n  - {path: x, type: ax}\n  - {path: x, type: ay}\n", "duplicate path, first declared by event 0"},
		{"duplicate type", "schemaVersion: \"1.0.0\"\nnamespace: A\nevents:\n  - {path: x, type: ax}\n  - {path: y, type: ax}\n", "duplicate type 'ax'"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadManifest([]byte(tc.yaml), "test.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoadManifestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(editorManifest), 0o600))

	manifests, err := config.LoadManifestFiles([]string{path})
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	assert.Equal(t, path, manifests[0].FilePath)

	_, err = config.LoadManifestFromFile(filepath.Join(dir, "missing.yaml"))
	var cfgErr *arcerrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	_, err = config.LoadManifestFromFile("")
	assert.EqualError(t, err, "configuration error: manifest file path cannot be empty")
}

func TestApplyManifests(t *testing.T) {
	base := registry.Default()
	before := base.Len()
	m, err := config.LoadManifest([]byte(editorManifest), "editor.yaml")
	require.NoError(t, err)

	extended, err := config.ApplyManifests(base, m)
	require.NoError(t, err)
	assert.Equal(t, before+3, extended.Len())
	assert.Equal(t, before, base.Len(), "the built-in registry must stay untouched")

	got, err := extended.Get("Editor.Tab.open")
	require.NoError(t, err)
	assert.Equal(t, events.EventType("editortabopen"), got)
	got, err = extended.Get("Model.Project.read")
	require.NoError(t, err)
	assert.Equal(t, eventtypes.ProjectRead, got)
}

func TestApplyManifestsReportsCollisions(t *testing.T) {
	clash, err := config.LoadManifest([]byte(`
schemaVersion: "1.0"
namespace: Plugin
events:
  - path: projectRead
    type: `+string(eventtypes.ProjectRead)+`
`), "plugin.yaml")
	require.NoError(t, err)
	editor, err := config.LoadManifest([]byte(editorManifest), "editor.yaml")
	require.NoError(t, err)
	again, err := config.LoadManifest([]byte(editorManifest), "copy.yaml")
	require.NoError(t, err)

	_, err = config.ApplyManifests(registry.Default(), clash, editor, again)
	require.Error(t, err)
	var vErr *arcerrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "'Model.Project.read' and 'Plugin.projectRead' share type 'modelprojectread'")
	assert.Contains(t, err.Error(), "duplicate path 'Editor.Tab.open'")
}
