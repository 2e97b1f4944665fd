package metrics

import (
	arcmetrics "github.com/arc-labs/arcevents/pkg/arcevents/v1/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every arcevents metric name.
const Namespace = "arcevents"

// PrometheusRegistryProvider holds a private Prometheus registry so several
// targets in one process do not clash on the default registerer.
type PrometheusRegistryProvider struct {
	registry *prometheus.Registry
}

// NewPrometheusRegistryProvider creates a provider with an empty registry.
func NewPrometheusRegistryProvider() *PrometheusRegistryProvider {
	return &PrometheusRegistryProvider{registry: prometheus.NewRegistry()}
}

// Registry returns the underlying registry.
func (p *PrometheusRegistryProvider) Registry() *prometheus.Registry {
	return p.registry
}

// RegisterCounterVec registers a counter vector, or returns the one already
// registered under the same name so a provider can be shared.
func RegisterCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels ...string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(vec); err != nil {
		// Same name and labels: hand back the existing collector.
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}

// Ensure PrometheusRegistryProvider implements the public interface.
var _ arcmetrics.RegistryProvider = (*PrometheusRegistryProvider)(nil)
