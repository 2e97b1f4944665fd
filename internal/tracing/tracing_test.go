package tracing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arc-labs/arcevents/internal/logger"
	"github.com/arc-labs/arcevents/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestKeywordSet(t *testing.T) {
	set := tracing.KeywordSet([]string{" Password ", "TOKEN", "", "  "})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "password")
	assert.Contains(t, set, "token")
}

func TestDetailAttributes(t *testing.T) {
	attrs := tracing.DetailAttributes(map[string]interface{}{
		"url":    "https://api",
		"rev":    3,
		"live":   true,
		"ids":    []string{"a", "b"},
		"absent": nil,
		"item":   struct{ Name string }{"p"},
	})

	keys := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		keys = append(keys, string(kv.Key))
	}
	assert.Equal(t, []string{
		"event.detail.ids", "event.detail.item", "event.detail.live",
		"event.detail.rev", "event.detail.url",
	}, keys, "attributes should be sorted and nil values skipped")
	assert.Equal(t, []string{"a", "b"}, attrs[0].Value.AsStringSlice())
	assert.Equal(t, "{p}", attrs[1].Value.AsString())
	assert.Equal(t, int64(3), attrs[3].Value.AsInt64())

	assert.Nil(t, tracing.DetailAttributes("not a map"))
	assert.Nil(t, tracing.DetailAttributes(map[string]interface{}{}))
}

func TestRedactAttributes(t *testing.T) {
	keywords := tracing.KeywordSet([]string{"password"})
	in := []attribute.KeyValue{
		attribute.String("event.detail.username", "u"),
		attribute.String("event.detail.Password", "hunter2"),
	}
	out := tracing.RedactAttributes(in, keywords)

	require.Len(t, out, 2)
	assert.Equal(t, "u", out[0].Value.AsString())
	assert.Equal(t, "[REDACTED]", out[1].Value.AsString())
	assert.Equal(t, "hunter2", in[1].Value.AsString(), "the input slice must not be modified")
}

func TestRedactSecretsInString(t *testing.T) {
	keywords := tracing.KeywordSet([]string{"token"})

	assert.Equal(t, "login failed: token=[REDACTED]",
		tracing.RedactSecretsInString("login failed: token=abc123", keywords))
	assert.Equal(t, "line one\naccess token: [REDACTED]",
		tracing.RedactSecretsInString("line one\naccess token: 'abc'", keywords))
	assert.Equal(t, `auth failed: token = [REDACTED]`,
		tracing.RedactSecretsInString(`auth failed: token = "abc"`, keywords))
	assert.Equal(t, "nothing here", tracing.RedactSecretsInString("nothing here", keywords))
	assert.Equal(t, "token=abc", tracing.RedactSecretsInString("token=abc", nil))
}

func TestRecordErrorWithContext(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	_, span := tp.Tracer("test").Start(context.Background(), "dispatch")

	tracing.RecordErrorWithContext(span, errors.New("bad secret: s3cr3t"), tracing.KeywordSet([]string{"secret"}))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "bad secret: [REDACTED]", spans[0].Status().Description)
	assert.NotContains(t, spans[0].Status().Description, "s3cr3t")
}

func TestNoOpProvider(t *testing.T) {
	p := tracing.NewNoOpProvider()
	assert.True(t, p.IsEffectivelyNoOp())
	assert.NotNil(t, p.GetTracer(tracing.TracerName))
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProviderFallsBackToNoOp(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	assert.True(t, tracing.NewProvider(ctx, tracing.ExporterConfig{Disabled: true}, log).IsEffectivelyNoOp())
	assert.True(t, tracing.NewProvider(ctx, tracing.ExporterConfig{Protocol: "carrier-pigeon"}, log).IsEffectivelyNoOp(),
		"an unsupported protocol should disable tracing instead of failing")
}

func TestExporterConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "HTTP")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "api-key=abc, tenant = t1,broken")
	t.Setenv("OTEL_EXPORTER_OTLP_TIMEOUT", "2500")
	t.Setenv("OTEL_EXPORTER_OTLP_COMPRESSION", "")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_INSECURE", "TRUE")

	cfg := tracing.ExporterConfigFromEnv()
	assert.Equal(t, "http", cfg.Protocol)
	assert.Equal(t, "localhost:4318", cfg.Endpoint)
	assert.Equal(t, "/v1/traces", cfg.TracesPath)
	assert.Equal(t, map[string]string{"api-key": "abc", "tenant": "t1"}, cfg.Headers)
	assert.Equal(t, "2.5s", cfg.Timeout.String())
	assert.True(t, cfg.Insecure)
}
