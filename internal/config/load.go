package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedSchemaVersionConstraint is the manifest major version this
// build understands.
const SupportedSchemaVersionConstraint = "v1"

// LoadManifest validates manifestYAML against the schema, decodes it
// strictly, checks the schema version and runs the logical checks of
// ValidateManifestStructure.
func LoadManifest(manifestYAML []byte, filePathHint string) (*Manifest, error) {
	if len(bytes.TrimSpace(manifestYAML)) == 0 {
		return nil, arcerrors.NewConfigError("manifest content cannot be empty", nil)
	}

	if err := ValidateWithSchema(manifestYAML); err != nil {
		return nil, arcerrors.NewConfigError(fmt.Sprintf("manifest '%s' failed schema validation", filePathHint), err)
	}

	var manifest Manifest
	if err := yamlUnmarshalStrict(manifestYAML, &manifest); err != nil {
		return nil, arcerrors.NewConfigError(fmt.Sprintf("failed to parse manifest YAML '%s'", filePathHint), err)
	}
	manifest.FilePath = filePathHint

	if err := checkSchemaVersion(manifest.SchemaVersion, filePathHint); err != nil {
		return nil, err
	}

	if validationErrs := ValidateManifestStructure(&manifest); len(validationErrs) > 0 {
		var errorMessages []string
		for _, vErr := range validationErrs {
			errorMessages = append(errorMessages, vErr.Error())
		}
		combinedMessage := fmt.Sprintf("manifest '%s' has %d validation error(s):\n- %s",
			filePathHint, len(errorMessages), strings.Join(errorMessages, "\n- "))
		return nil, arcerrors.NewValidationError(combinedMessage, validationErrs[0])
	}
	return &manifest, nil
}

// LoadManifestFromFile reads and loads the manifest at filePath.
func LoadManifestFromFile(filePath string) (*Manifest, error) {
	if filePath == "" {
		return nil, arcerrors.NewConfigError("manifest file path cannot be empty", nil)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, arcerrors.NewConfigError(fmt.Sprintf("failed to get absolute path for '%s'", filePath), err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, arcerrors.NewConfigError(fmt.Sprintf("failed to read manifest file '%s'", absPath), err)
	}
	return LoadManifest(data, absPath)
}

// LoadManifestFiles loads every file in order and stops at the first error.
func LoadManifestFiles(paths []string) ([]*Manifest, error) {
	manifests := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := LoadManifestFromFile(p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

func checkSchemaVersion(version, filePathHint string) error {
	if version == "" {
		return arcerrors.NewValidationError(fmt.Sprintf("manifest '%s' is missing required 'schemaVersion' field", filePathHint), nil)
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return arcerrors.NewValidationError(fmt.Sprintf("manifest '%s' has invalid 'schemaVersion' format: '%s'", filePathHint, version), nil)
	}
	if semver.Major(v) != SupportedSchemaVersionConstraint {
		return arcerrors.NewValidationError(
			fmt.Sprintf("manifest '%s' schemaVersion '%s' is not compatible with requirement '%s'",
				filePathHint, version, SupportedSchemaVersionConstraint),
			nil,
		)
	}
	return nil
}

// yamlUnmarshalStrict rejects fields the target struct does not declare.
func yamlUnmarshalStrict(in []byte, out interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(in))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("YAML parsing error: %w", err)
	}
	return nil
}
