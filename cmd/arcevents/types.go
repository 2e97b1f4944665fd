package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	// Registers the built-in catalog.
	_ "github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTypesCommand(a *app) *cobra.Command {
	var namespace, format string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the event type catalog",
		Long: `List every registered namespace path with its event type. Event types
declared by the manifests named in the settings are included.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "yaml":
			default:
				return usagef("invalid --format '%s', expected text, json or yaml", format)
			}
			reg, err := a.registry(a.settings.Manifests)
			if err != nil {
				return err
			}
			entries := filterNamespace(reg.List(), namespace)
			if len(entries) == 0 {
				return arcerrors.NewTypeNotFoundError(namespace)
			}
			return writeEntries(cmd.OutOrStdout(), entries, format)
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "", "Only list paths at or below this namespace, e.g. Model.Project")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")
	return cmd
}

// registry returns the built-in catalog extended with the manifests at
// paths.
func (a *app) registry(paths []string) (*registry.StaticRegistry, error) {
	manifests, err := config.LoadManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	reg, err := config.ApplyManifests(registry.Default(), manifests...)
	if err != nil {
		return nil, err
	}
	a.log.Debugf("Registry holds %d event types (%d manifest(s))", reg.Len(), len(manifests))
	return reg, nil
}

func filterNamespace(entries []registry.Entry, prefix string) []registry.Entry {
	if prefix == "" {
		return entries
	}
	var out []registry.Entry
	for _, e := range entries {
		if e.Path == prefix || strings.HasPrefix(e.Path, prefix+".") {
			out = append(out, e)
		}
	}
	return out
}

func writeEntries(w io.Writer, entries []registry.Entry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTYPE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Path, e.Type)
	}
	return tw.Flush()
}
