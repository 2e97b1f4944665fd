package tracing

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	arctracing "github.com/arc-labs/arcevents/pkg/arcevents/v1/tracing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/encoding/gzip"
)

// Defaults follow the OTLP exporter specification.
const (
	defaultServiceName  = "arcevents"
	defaultGRPCEndpoint = "localhost:4317"
	defaultHTTPEndpoint = "localhost:4318"
	defaultTracesPath   = "/v1/traces"
	defaultTimeout      = 10 * time.Second
)

// OtelTracerProvider implements the public TracerProvider on top of the
// OpenTelemetry SDK, or on the no-op provider when tracing is not
// configured.
type OtelTracerProvider struct {
	// provider hands out tracers: the SDK provider or the no-op one.
	provider trace.TracerProvider
	// exporter and sdkProvider are nil in no-op mode and are shut down
	// together by Shutdown.
	exporter    sdktrace.SpanExporter
	sdkProvider *sdktrace.TracerProvider
	log         arclog.Logger
}

// NewNoOpProvider returns a provider whose tracers record nothing.
func NewNoOpProvider() *OtelTracerProvider {
	return &OtelTracerProvider{provider: trace.NewNoopTracerProvider()}
}

// ExporterConfig is the OTLP exporter setup read from the OTEL_* environment.
type ExporterConfig struct {
	// Disabled mirrors OTEL_SDK_DISABLED=true.
	Disabled bool
	// Protocol is "grpc" (default), "http" or "http/protobuf".
	Protocol string
	// Endpoint is host:port of the collector.
	Endpoint string
	// TracesPath is the URL path used by the HTTP exporter.
	TracesPath  string
	Headers     map[string]string
	Timeout     time.Duration
	Compression string
	// Insecure disables TLS towards the collector.
	Insecure bool
}

// ExporterConfigFromEnv reads the standard OTEL_* variables. An empty
// endpoint is replaced by the protocol's default collector address.
func ExporterConfigFromEnv() ExporterConfig {
	cfg := ExporterConfig{
		Disabled:    strings.EqualFold(os.Getenv("OTEL_SDK_DISABLED"), "true"),
		Protocol:    strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")),
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		TracesPath:  os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		Headers:     parseHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
		Timeout:     parseTimeout(os.Getenv("OTEL_EXPORTER_OTLP_TIMEOUT"), defaultTimeout),
		Compression: strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_COMPRESSION")),
		Insecure:    isInsecure(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"), os.Getenv("OTEL_EXPORTER_OTLP_TRACES_INSECURE")),
	}
	if cfg.Protocol == "" {
		cfg.Protocol = "grpc"
	}
	if cfg.TracesPath == "" {
		cfg.TracesPath = defaultTracesPath
	}
	if cfg.Endpoint == "" {
		switch cfg.Protocol {
		case "grpc":
			cfg.Endpoint = defaultGRPCEndpoint
		case "http", "http/protobuf":
			cfg.Endpoint = defaultHTTPEndpoint
		}
	}
	return cfg
}

// NewProviderFromEnv builds a provider from the OTEL_* environment. It never
// fails: when tracing is disabled or the exporter cannot be created the
// no-op provider is returned and the reason is logged. The global OTel
// provider is left untouched.
func NewProviderFromEnv(ctx context.Context, log arclog.Logger) *OtelTracerProvider {
	return NewProvider(ctx, ExporterConfigFromEnv(), log)
}

// NewProvider builds a provider from an explicit exporter configuration.
func NewProvider(ctx context.Context, cfg ExporterConfig, log arclog.Logger) *OtelTracerProvider {
	if cfg.Disabled {
		log.Debugf("OpenTelemetry tracing disabled via OTEL_SDK_DISABLED")
		return NewNoOpProvider()
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		log.Warnf("Failed to create OTLP exporter, tracing disabled: %v", err)
		return NewNoOpProvider()
	}
	if exporter == nil {
		log.Debugf("No OTLP endpoint for protocol '%s', tracing disabled", cfg.Protocol)
		return NewNoOpProvider()
	}

	// Describe this process; detection failures are not fatal.
	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(semconv.ServiceNameKey.String(serviceName())),
		resource.WithProcess(), resource.WithOS(), resource.WithHost(),
	)
	if err != nil {
		log.Warnf("Failed to detect OTel resource, using default: %v", err)
		res = resource.Default()
	}

	// Honor the caller's sampling decision, sample roots always.
	sdkTP := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	log.Infof("OpenTelemetry tracing enabled (protocol: %s, endpoint: %s)", cfg.Protocol, cfg.Endpoint)
	return &OtelTracerProvider{provider: sdkTP, exporter: exporter, sdkProvider: sdkTP, log: log}
}

// newExporter returns nil, nil when the protocol has no endpoint to talk to.
func newExporter(ctx context.Context, cfg ExporterConfig) (sdktrace.SpanExporter, error) {
	switch cfg.Protocol {
	case "grpc":
		if cfg.Endpoint == "" {
			return nil, nil
		}
		opts := []otlptracegrpc.Option{
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithHeaders(cfg.Headers),
			otlptracegrpc.WithTimeout(cfg.Timeout),
		}
		// TLS with the system roots unless insecure was requested.
		if cfg.Insecure {
			opts = append(opts, otlptracegrpc.WithInsecure())
		} else {
			opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
		}
		if cfg.Compression == "gzip" {
			opts = append(opts, otlptracegrpc.WithCompressor(gzip.Name))
		}
		return otlptracegrpc.New(ctx, opts...)

	case "http", "http/protobuf":
		if cfg.Endpoint == "" {
			return nil, nil
		}
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithURLPath(cfg.TracesPath),
			otlptracehttp.WithHeaders(cfg.Headers),
			otlptracehttp.WithTimeout(cfg.Timeout),
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		if cfg.Compression == "gzip" {
			opts = append(opts, otlptracehttp.WithCompression(otlptracehttp.GzipCompression))
		}
		return otlptracehttp.New(ctx, opts...)

	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", cfg.Protocol)
	}
}

// GetTracer returns a tracer from the SDK or the no-op provider.
func (p *OtelTracerProvider) GetTracer(name string, opts ...trace.TracerOption) trace.Tracer {
	if p.provider == nil {
		return trace.NewNoopTracerProvider().Tracer(name, opts...)
	}
	return p.provider.Tracer(name, opts...)
}

// Shutdown flushes buffered spans. It is a no-op for the no-op provider.
func (p *OtelTracerProvider) Shutdown(ctx context.Context) error {
	// Shut down both, report the first failure.
	var firstErr error
	if p.sdkProvider != nil {
		if err := p.sdkProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if p.exporter != nil {
		if err := p.exporter.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil && p.log != nil {
		p.log.Errorf("Error shutting down OpenTelemetry tracing: %v", firstErr)
	}
	return firstErr
}

// IsEffectivelyNoOp reports whether spans are discarded. The dispatcher
// skips attribute building in that case.
func (p *OtelTracerProvider) IsEffectivelyNoOp() bool {
	return p.sdkProvider == nil
}

// serviceName prefers OTEL_SERVICE_NAME.
func serviceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return defaultServiceName
}

// parseHeaders converts "k1=v1,k2=v2" into a map.
func parseHeaders(headerStr string) map[string]string {
	headers := make(map[string]string)
	if headerStr == "" {
		return headers
	}
	for _, pair := range strings.Split(headerStr, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) != 2 {
			continue
		}
		if key := strings.TrimSpace(kv[0]); key != "" {
			headers[key] = strings.TrimSpace(kv[1])
		}
	}
	return headers
}

// parseTimeout accepts integer milliseconds (the OTLP format) or a Go
// duration string. Negative or malformed values yield the default.
func parseTimeout(timeoutStr string, def time.Duration) time.Duration {
	if timeoutStr == "" {
		return def
	}
	if ms, err := strconv.ParseInt(timeoutStr, 10, 64); err == nil {
		if ms < 0 {
			return def
		}
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(timeoutStr); err == nil && d >= 0 {
		return d
	}
	return def
}

// isInsecure reports whether any of the insecure variables is "true".
func isInsecure(flags ...string) bool {
	for _, flag := range flags {
		if strings.EqualFold(strings.TrimSpace(flag), "true") {
			return true
		}
	}
	return false
}

// Ensure OtelTracerProvider implements the public interface at compile time.
var _ arctracing.TracerProvider = (*OtelTracerProvider)(nil)
