package config

import "strings"

// Event kinds an extension may declare. The kind is informational: it
// tells listeners whether a result is expected.
const (
	KindAction       = "action"
	KindNotification = "notification"
)

// Manifest declares event types a host application adds next to the
// built-in catalog. All paths live below Namespace.
type Manifest struct {
	SchemaVersion string          `yaml:"schemaVersion" json:"schemaVersion"`
	Namespace     string          `yaml:"namespace" json:"namespace"`
	Description   string          `yaml:"description,omitempty" json:"description,omitempty"`
	Events        []ManifestEvent `yaml:"events" json:"events"`

	// FilePath is the source of the manifest, for error messages. It is not
	// parsed from the YAML.
	FilePath string `yaml:"-" json:"-"`
}

// ManifestEvent is one declared event type. Path is relative to the
// manifest namespace.
type ManifestEvent struct {
	Path        string `yaml:"path" json:"path"`
	Type        string `yaml:"type" json:"type"`
	Kind        string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// FullPath joins the manifest namespace and the relative path of e.
func (m *Manifest) FullPath(e ManifestEvent) string {
	return strings.Join([]string{m.Namespace, e.Path}, ".")
}

// GetKind returns the declared kind or KindNotification.
func (e ManifestEvent) GetKind() string {
	if e.Kind == "" {
		return KindNotification
	}
	return e.Kind
}
