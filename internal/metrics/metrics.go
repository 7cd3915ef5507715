// Package metrics provides Prometheus instrumentation for the controller.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exposed on the metrics endpoint.
type Metrics struct {
	registry *prometheus.Registry

	// LoginAttempts counts login attempts by outcome:
	// success, invalid_credentials, locked.
	LoginAttempts *prometheus.CounterVec

	// Lockouts counts lockout episodes started.
	Lockouts prometheus.Counter

	// Operations counts controller operations by name and result.
	Operations *prometheus.CounterVec

	// OperationDuration observes controller operation latency, including
	// the simulated round-trip delay.
	OperationDuration *prometheus.HistogramVec
}

// New creates and registers the collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mira",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		Lockouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mira",
			Name:      "lockouts_total",
			Help:      "Lockout episodes started.",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mira",
			Name:      "operations_total",
			Help:      "Controller operations by name and result.",
		}, []string{"op", "result"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mira",
			Name:      "operation_duration_seconds",
			Help:      "Controller operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	registry.MustRegister(m.LoginAttempts, m.Lockouts, m.Operations, m.OperationDuration)
	return m
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOperation records one finished operation.
func (m *Metrics) ObserveOperation(op string, success bool, seconds float64) {
	result := "failure"
	if success {
		result = "success"
	}
	m.Operations.WithLabelValues(op, result).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(seconds)
}
