// Package metrics exposes the Prometheus registry used by arcevents.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// RegistryProvider gives access to the registry holding the dispatcher and
// relay metrics, so a host application can expose it however it likes.
type RegistryProvider interface {
	// Registry returns the Prometheus registry with arcevents metrics.
	Registry() *prometheus.Registry
}
