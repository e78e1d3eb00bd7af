// Package observability collects Prometheus metrics for outbound API calls.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for API call results.
const (
	OutcomeSuccess = "success"
	OutcomeRemote  = "remote_failure"
	OutcomeNetwork = "network_error"
)

// Metrics aggregates Prometheus metrics for the client.
type Metrics struct {
	registry      *prometheus.Registry
	handler       http.Handler
	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	submitsTotal *prometheus.CounterVec
}

// NewMetrics initialises the registry and base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stocklane_api_calls_total",
		Help: "Outbound API calls by resource and outcome.",
	}, []string{"resource", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stocklane_api_call_duration_seconds",
		Help:    "Outbound API call duration per resource.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})
	submits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stocklane_draft_submits_total",
		Help: "Draft submissions by transaction kind and outcome.",
	}, []string{"kind", "outcome"})
	registry.MustRegister(calls, duration, submits)
	return &Metrics{
		registry:     registry,
		handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		callsTotal:   calls,
		callDuration: duration,
		submitsTotal: submits,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveCall records one outbound API call.
func (m *Metrics) ObserveCall(resource, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.callsTotal.WithLabelValues(resource, outcome).Inc()
	m.callDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// ObserveSubmit records one draft submission attempt.
func (m *Metrics) ObserveSubmit(kind, outcome string) {
	if m == nil {
		return
	}
	m.submitsTotal.WithLabelValues(kind, outcome).Inc()
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}
