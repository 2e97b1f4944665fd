package main

import (
	"errors"
	"fmt"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that event types are unique across the catalog and manifests",
		Long: `Load the manifests given with --manifest (or listed in the settings) and
check that no two namespace paths share an event type and no path is
declared twice, built-in types included.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := a.settings.Manifests
			reg, err := a.registry(paths)
			if err != nil {
				a.logManifestError(err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d event types (%d built-in, %d from %d manifest(s))\n",
				reg.Len(), registry.Default().Len(), reg.Len()-registry.Default().Len(), len(paths))
			return nil
		},
	}
	cmd.Flags().StringSlice("manifest", nil, "Path to an extension manifest (repeatable)")
	bindFlags(a.v, cmd.Flags(), map[string]string{"manifests": "manifest"})
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate one extension manifest",
		Long: `Validate the schema, the schema version and the logical structure of an
extension manifest without checking it against the catalog.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return usagef("--manifest is required")
			}
			a.log.Infof("Validating manifest: %s", path)
			m, err := config.LoadManifestFromFile(path)
			if err != nil {
				a.logManifestError(err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Manifest '%s' is valid: namespace %s, %d event type(s)\n", path, m.Namespace, len(m.Events))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "manifest", "", "Path to the manifest to validate (required)")
	return cmd
}

func (a *app) logManifestError(err error) {
	var validationErr *arcerrors.ValidationError
	var configErr *arcerrors.ConfigError
	switch {
	case errors.As(err, &validationErr):
		a.log.Errorf("Manifest validation failed:\n%s", validationErr.Error())
	case errors.As(err, &configErr):
		a.log.Errorf("Manifest configuration error:\n%s", configErr.Error())
	default:
		a.log.Errorf("Failed to load manifests: %v", err)
	}
}
