package tracing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer dispatch spans are created with.
const TracerName = "arcevents"

// redacted replaces every masked value.
const redacted = "[REDACTED]"

// DefaultRedactedKeywords are the payload keys whose values never reach
// span attributes or error descriptions. Auth payloads carry all of them.
var DefaultRedactedKeywords = []string{
	"password", "passphrase", "token", "accesstoken", "refreshtoken",
	"idtoken", "clientsecret", "secret", "authorization", "cookie", "value",
}

// KeywordSet lowercases keywords into the lookup set the redaction helpers
// expect.
func KeywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// DetailAttributes turns the top level of an event detail map into span
// attributes prefixed with "event.detail.". Nested values are rendered with
// %v; anything that is not a map yields no attributes.
func DetailAttributes(detail interface{}) []attribute.KeyValue {
	m, ok := detail.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil
	}
	// Sorted for a stable attribute order.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		key := "event.detail." + k
		switch v := m[k].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case []string:
			attrs = append(attrs, attribute.StringSlice(key, v))
		case nil:
			// Absent optional fields produce no attribute.
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprintf("%v", v)))
		}
	}
	return attrs
}

// RedactAttributes returns a copy of attrs where every attribute whose last
// key segment matches a keyword carries "[REDACTED]" instead of its value.
func RedactAttributes(attrs []attribute.KeyValue, keywords map[string]struct{}) []attribute.KeyValue {
	if len(keywords) == 0 || len(attrs) == 0 {
		return attrs
	}
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, kv := range attrs {
		key := strings.ToLower(string(kv.Key))
		if i := strings.LastIndex(key, "."); i >= 0 {
			key = key[i+1:]
		}
		if _, redact := keywords[key]; redact {
			out = append(out, attribute.String(string(kv.Key), redacted))
			continue
		}
		out = append(out, kv)
	}
	return out
}

// RedactSecretsInString replaces whatever follows a keyword on each line,
// quotes included, so no half of a quoted value is left behind. It is a
// heuristic meant for error messages, not a parser.
func RedactSecretsInString(input string, keywords map[string]struct{}) string {
	if len(keywords) == 0 || input == "" {
		return input
	}

	changed := false
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		for keyword := range keywords {
			idx := strings.Index(lower, keyword)
			if idx == -1 {
				continue
			}
			// Skip the separator, then mask the rest of the line.
			start := idx + len(keyword)
			for start < len(line) && strings.ContainsAny(string(line[start]), ":= ") {
				start++
			}
			if start < len(line) {
				lines[i] = line[:start] + redacted
				changed = true
				break
			}
		}
	}
	if !changed {
		return input
	}
	return strings.Join(lines, "\n")
}

// RecordErrorWithContext records err on span with its message redacted and
// marks the span as failed.
func RecordErrorWithContext(span oteltrace.Span, err error, keywords map[string]struct{}) {
	if err == nil || span == nil || !span.IsRecording() {
		return
	}
	msg := RedactSecretsInString(err.Error(), keywords)
	span.RecordError(errors.New(msg), oteltrace.WithStackTrace(true))
	span.SetStatus(codes.Error, msg)
}
