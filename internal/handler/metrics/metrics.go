// Package metrics provides observability for the endpoint handlers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the endpoint handler module.
type Metrics struct {
	// Backend API call latency by path
	BackendLatency *prometheus.HistogramVec

	// Handler outcomes by endpoint and action code
	HandlerOutcome *prometheus.CounterVec

	// Unknown action codes by backend path
	UnknownAction *prometheus.CounterVec
}

// New creates a Metrics instance with all handler metrics registered.
func New() *Metrics {
	return &Metrics{
		BackendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gatekit_backend_call_duration_seconds",
			Help:    "Duration of backend decision API calls by path",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"path"}),

		HandlerOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gatekit_handler_outcomes_total",
			Help: "Total handler outcomes by endpoint and action code",
		}, []string{"endpoint", "action"}),

		UnknownAction: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gatekit_unknown_actions_total",
			Help: "Total unknown action codes returned by the backend, by path",
		}, []string{"path"}),
	}
}

// ObserveBackendLatency records the duration of a backend API call.
func (m *Metrics) ObserveBackendLatency(path string, d time.Duration) {
	if m != nil {
		m.BackendLatency.WithLabelValues(path).Observe(d.Seconds())
	}
}

// IncrementOutcome records a handler outcome.
func (m *Metrics) IncrementOutcome(endpoint, action string) {
	if m != nil {
		m.HandlerOutcome.WithLabelValues(endpoint, action).Inc()
	}
}

// IncrementUnknownAction records an unrecognized backend action code.
func (m *Metrics) IncrementUnknownAction(path string) {
	if m != nil {
		m.UnknownAction.WithLabelValues(path).Inc()
	}
}
