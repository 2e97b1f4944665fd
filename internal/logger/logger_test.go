package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/arc-labs/arcevents/internal/logger"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel(" Warning "))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"), "unknown levels fall back to INFO")
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestErrorfArgumentErrorFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("info", "json", &buf)

	log.Errorf("Rejected payload: %v", arcerrors.NewArgumentError("url", arcerrors.KindString))

	entry := decode(t, &buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "Rejected payload: Expected url argument as string.", entry["msg"])
	assert.Equal(t, "ArgumentError", entry["error_type"])
	assert.Equal(t, "url", entry["argument"])
	assert.Equal(t, "string", entry["expected_kind"])
}

func TestErrorfListenerPanicFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("info", "json", &buf)

	log.Errorf("Listener failed: %v", arcerrors.NewListenerPanicError("modelprojectread", errors.New("boom")))

	entry := decode(t, &buf)
	assert.Equal(t, "ListenerPanicError", entry["error_type"])
	assert.Equal(t, "modelprojectread", entry["event_type"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("warn", "text", &buf)

	log.Infof("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, log.IsEnabled(slog.LevelInfo))

	log.With("component", "test").Warnf("shown %d", 1)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), `msg="shown 1"`)
}

func TestLogCtxAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("info", "json", &buf)
	ctx, span := sdktrace.NewTracerProvider().Tracer("test").Start(context.Background(), "dispatch")
	defer span.End()

	log.LogCtx(ctx, slog.LevelInfo, "dispatched")

	entry := decode(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), entry["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), entry["span_id"])
}
