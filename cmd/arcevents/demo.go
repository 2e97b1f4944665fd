package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arc-labs/arcevents/internal/config"
	"github.com/arc-labs/arcevents/internal/datastore"
	relay "github.com/arc-labs/arcevents/internal/events"
	"github.com/arc-labs/arcevents/internal/metrics"
	"github.com/arc-labs/arcevents/internal/tracing"
	arcevents "github.com/arc-labs/arcevents/pkg/arcevents/v1"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newDemoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the project update scenario against the reference data store",
		Long: `Wire a dispatch target to the in-memory data store and the observer relay,
then create, read and delete a project through the action functions.
Every dispatch is relayed to the metrics listener and, with --journal,
written as a CloudEvents JSON line ("-" writes to standard output).`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.String("journal", "", "Write relayed envelopes as CloudEvents JSON lines to this file")
	flags.Int("buffer-size", config.DefaultRelayBufferSize, "Relay buffer size")
	flags.String("overflow", config.OverflowDropNew, "Relay overflow strategy (drop_new, block)")
	bindFlags(a.v, flags, map[string]string{
		"journal":                 "journal",
		"relay.buffer_size":       "buffer-size",
		"relay.overflow_strategy": "overflow",
	})
	return cmd
}

func (a *app) runDemo(ctx context.Context, w io.Writer) error {
	log := a.log.With("command", "demo")
	// Listeners and the journal write from the dispatching and the
	// consuming goroutine.
	out := &lockedWriter{w: w}

	bus := relay.NewChannelEventBus(a.settings.Relay, log)
	defer bus.Close()
	provider := metrics.NewPrometheusRegistryProvider()
	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "relay",
		Name:      "dropped_total",
		Help:      "Envelopes dropped because the relay buffer was full.",
	})
	if err := provider.Registry().Register(dropped); err != nil {
		return fmt.Errorf("registering relay drop counter: %w", err)
	}
	bus.SetDroppedCounter(dropped)

	tracerProvider := tracing.NewProviderFromEnv(ctx, log)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Warnf("Error shutting down tracer provider: %v", err)
		}
	}()

	target, err := arcevents.NewTarget(log,
		arcevents.WithObserver(bus),
		arcevents.WithMetricsRegistryProvider(provider),
		arcevents.WithTracerProvider(tracerProvider),
	)
	if err != nil {
		return err
	}

	handlers, closeJournal, err := a.relayHandlers(bus, provider, out)
	if err != nil {
		return err
	}
	defer closeJournal()
	var relayed atomic.Int64
	handlers = append(handlers, relay.HandlerFunc(func(events.Envelope) { relayed.Add(1) }))

	consumeCtx, cancelConsume := context.WithCancel(ctx)
	defer cancelConsume()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		relay.Consume(consumeCtx, bus, log, handlers...)
	}()

	store := datastore.New(log)
	store.Attach(target)
	defer store.Detach()

	target.AddListener(eventtypes.ProjectStateUpdate, events.Handle(func(_ context.Context, e *events.StateUpdateEvent[types.Project]) {
		fmt.Fprintf(out, "observed %s: id=%s rev=%s\n", e.Type(), e.Changed().ID, e.Changed().Rev)
	}))
	target.AddListener(eventtypes.ProjectStateDelete, events.Handle(func(_ context.Context, e *events.StateDeleteEvent) {
		fmt.Fprintf(out, "observed %s: id=%s rev=%s\n", e.Type(), e.ID(), e.Rev())
	}))

	if err := projectScenario(ctx, target, out); err != nil {
		return err
	}

	// Closing the bus lets the consumer drain what is buffered and return.
	bus.Close()
	wg.Wait()
	fmt.Fprintf(out, "relayed %d envelope(s), %d listener(s) registered for %s\n",
		relayed.Load(), target.ListenerCount(eventtypes.ProjectUpdate), eventtypes.ProjectUpdate)
	return nil
}

// relayHandlers returns the metrics listener and, when a journal path is
// set, the journal listener. The returned func closes the journal file.
func (a *app) relayHandlers(bus *relay.ChannelEventBus, provider *metrics.PrometheusRegistryProvider, stdout io.Writer) ([]relay.Handler, func(), error) {
	metricsListener, err := relay.NewMetricsEventListener(nil, provider.Registry(), a.log)
	if err != nil {
		return nil, nil, err
	}
	handlers := []relay.Handler{metricsListener}

	closeJournal := func() {}
	var w io.Writer
	switch path := a.settings.JournalPath; path {
	case "":
	case "-":
		w = stdout
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, arcerrors.NewConfigError(fmt.Sprintf("failed to open journal '%s'", path), err)
		}
		w = f
		closeJournal = func() {
			if err := f.Close(); err != nil {
				a.log.Warnf("Failed to close journal '%s': %v", path, err)
			}
		}
	}
	if w != nil {
		keywords := tracing.KeywordSet(tracing.DefaultRedactedKeywords)
		handlers = append(handlers, relay.NewJournalListener(w, keywords, a.log))
	}
	return handlers, closeJournal, nil
}

// projectScenario creates, reads and deletes a project.
func projectScenario(ctx context.Context, target events.Target, out io.Writer) error {
	rec, err := model.UpdateProject(ctx, target, &types.Project{Name: "My Project"})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if err := printJSON(out, "updated", rec); err != nil {
		return err
	}

	project, err := model.ReadProject(ctx, target, rec.ID, rec.Rev)
	if err != nil {
		return fmt.Errorf("read project: %w", err)
	}
	if err := printJSON(out, "read", project); err != nil {
		return err
	}

	deleted, err := model.DeleteProject(ctx, target, project.ID, project.Rev)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if err := printJSON(out, "deleted", deleted); err != nil {
		return err
	}

	if _, err := model.UpdateAuthData(ctx, target, "", "GET", &types.AuthData{Username: "demo"}); err != nil {
		fmt.Fprintf(out, "rejected auth data update: %v\n", err)
	}
	return nil
}

func printJSON(w io.Writer, label string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s result: %w", label, err)
	}
	fmt.Fprintf(w, "%s: %s\n", label, data)
	return nil
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
