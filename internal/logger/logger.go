// Package logger implements the public log.Logger on log/slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	"go.opentelemetry.io/otel/trace"
)

// defaultLevel applies when the configured level is empty or unknown.
const defaultLevel = slog.LevelInfo

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to slog
// levels. Anything else is INFO.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return defaultLevel
	}
}

// defaultLogger implements arclog.Logger on log/slog.
type defaultLogger struct {
	// Embedded so Log, LogAttrs and Enabled are available directly.
	*slog.Logger
}

// Compile-time check that defaultLogger implements arclog.Logger.
var _ arclog.Logger = (*defaultLogger)(nil)

// NewLogger creates a Logger writing text or json entries to writer
// (stderr when nil). Entries logged with a span in their context carry
// trace_id and span_id.
func NewLogger(levelStr string, formatStr string, writer io.Writer) arclog.Logger {
	if writer == nil {
		writer = os.Stderr
	}
	// The replacer prints levels as DEBUG/INFO/WARN/ERROR in both formats.
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(levelStr),
		ReplaceAttr: replaceLevelAttribute,
	}

	// Unknown formats fall back to text.
	var base slog.Handler
	switch strings.ToLower(formatStr) {
	case "json":
		base = slog.NewJSONHandler(writer, opts)
	default:
		base = slog.NewTextHandler(writer, opts)
	}
	// Wrap the base handler so records carry the active span ids.
	return &defaultLogger{Logger: slog.New(NewOtelHandler(base))}
}

// NewDefaultLogger returns a text logger on stderr.
func NewDefaultLogger(levelStr string) arclog.Logger {
	return NewLogger(levelStr, "text", os.Stderr)
}

// NewNopLogger discards everything. Used by tests and library callers that
// did not configure logging.
func NewNopLogger() arclog.Logger {
	return NewLogger("error", "text", io.Discard)
}

// levelStringMap holds the canonical names of the standard levels.
var levelStringMap = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
}

// replaceLevelAttribute renders the level attribute with levelStringMap.
// Custom levels keep slog's own rendering, e.g. "INFO+2".
func replaceLevelAttribute(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	if s, exists := levelStringMap[level]; exists {
		a.Value = slog.StringValue(s)
	} else {
		a.Value = slog.StringValue(level.String())
	}
	return a
}

// Debugf formats only when DEBUG is enabled.
func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	if l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
	}
}

// Infof logs at INFO.
func (l *defaultLogger) Infof(format string, args ...interface{}) {
	if l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, args...))
	}
}

// Warnf logs at WARN.
func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	if l.Logger.Enabled(context.Background(), slog.LevelWarn) {
		l.Logger.Log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, args...))
	}
}

// Errorf logs at ERROR. When the last argument is an error its details are
// added as attributes; ArgumentError and ListenerPanicError get their own
// fields.
func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	if !l.Logger.Enabled(context.Background(), slog.LevelError) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.Logger.Log(context.Background(), slog.LevelError, msg, errorAttrs(args)...)
}

// errorAttrs builds structured attributes from a trailing error argument.
func errorAttrs(args []interface{}) []any {
	if len(args) == 0 {
		return nil
	}
	// Only a trailing error is inspected, matching the "...: %v", err idiom.
	err, ok := args[len(args)-1].(error)
	if !ok {
		return nil
	}

	var argErr *arcerrors.ArgumentError
	var panicErr *arcerrors.ListenerPanicError
	switch {
	case errors.As(err, &argErr):
		return []any{
			slog.String("error_type", "ArgumentError"),
			slog.String("argument", argErr.Argument),
			slog.String("expected_kind", argErr.Kind),
			slog.String("error", err.Error()),
		}
	case errors.As(err, &panicErr):
		return []any{
			slog.String("error_type", "ListenerPanicError"),
			slog.String("event_type", panicErr.EventType),
			slog.String("error", err.Error()),
		}
	default:
		return []any{slog.String("error", err.Error())}
	}
}

// Log logs msg with key-value args and no context.
func (l *defaultLogger) Log(level slog.Level, msg string, args ...interface{}) {
	l.Logger.Log(context.Background(), level, msg, args...)
}

// LogCtx logs with ctx so the OtelHandler can pick up the span.
func (l *defaultLogger) LogCtx(ctx context.Context, level slog.Level, msg string, args ...interface{}) {
	l.Logger.Log(ctx, level, msg, args...)
}

// With returns a child logger carrying args on every record.
func (l *defaultLogger) With(args ...interface{}) arclog.Logger {
	return &defaultLogger{Logger: l.Logger.With(args...)}
}

// IsEnabled reports whether records at level would be written.
func (l *defaultLogger) IsEnabled(level slog.Level) bool {
	return l.Logger.Enabled(context.Background(), level)
}

// OtelHandler injects trace_id and span_id into records logged with a
// valid span context.
type OtelHandler struct {
	// next receives every record after the ids were added.
	next slog.Handler
}

// NewOtelHandler wraps next.
func NewOtelHandler(next slog.Handler) *OtelHandler {
	return &OtelHandler{next: next}
}

// Enabled delegates to the wrapped handler.
func (h *OtelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds trace_id and span_id when ctx holds a valid span context.
func (h *OtelHandler) Handle(ctx context.Context, record slog.Record) error {
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		record.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.next.Handle(ctx, record)
}

// WithAttrs keeps the wrapper around the derived handler.
func (h *OtelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewOtelHandler(h.next.WithAttrs(attrs))
}

// WithGroup keeps the wrapper around the derived handler.
func (h *OtelHandler) WithGroup(name string) slog.Handler {
	return NewOtelHandler(h.next.WithGroup(name))
}
