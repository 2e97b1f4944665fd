package main

import (
	"fmt"
	"io"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/internal/logger"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once the root pre-run has
// loaded the settings.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	log      arclog.Logger
	stderr   io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.NewViper(), stderr: stderr}
	var settingsFile string

	cmd := &cobra.Command{
		Use:   "arcevents",
		Short: "Inspect and exercise the arcevents event contracts",
		Long: `arcevents lists the event type catalog, validates extension manifests
that add event types for host-application namespaces, and runs a demo
that wires a dispatch target to the reference data store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(a.v, settingsFile)
			if err != nil {
				return err
			}
			a.settings = settings
			a.log = logger.NewLogger(settings.LogLevel, settings.LogFormat, a.stderr).With("arcevents_version", version)
			a.log.Debugf("Settings loaded (log level: %s, relay buffer: %d, overflow: %s)",
				settings.LogLevel, settings.Relay.BufferSize, settings.Relay.OverflowStrategy)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.PersistentFlags()
	flags.StringVar(&settingsFile, "config", "", "Path to a YAML settings file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	bindFlags(a.v, flags, map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
	})

	cmd.AddCommand(
		newTypesCommand(a),
		newCheckCommand(a),
		newValidateCommand(a),
		newDemoCommand(a),
		newVersionCommand(),
	)
	return cmd
}

// bindFlags binds settings keys to flags so that a flag set on the command
// line wins over the environment and the settings file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag --%s: %v", name, err))
		}
	}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no arguments, got %q", cmd.CommandPath(), args)
	}
	return nil
}
