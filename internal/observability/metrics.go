package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce         sync.Once
	httpRequestsTotal    *prometheus.CounterVec
	httpLatencySeconds   *prometheus.HistogramVec
	httpErrorsTotal      *prometheus.CounterVec
	propagationRunsTotal *prometheus.CounterVec
	propagationMatched   *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gomis_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gomis_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gomis_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		propagationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gomis_propagation_runs_total",
			Help: "Status propagation passes, by triggering entity and outcome.",
		}, []string{"entity", "outcome"})

		propagationMatched = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gomis_propagation_matched_total",
			Help: "Violations updated by status propagation, by triggering entity.",
		}, []string{"entity"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, httpErrorsTotal, propagationRunsTotal, propagationMatched)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// PropagationRuns exposes the counter for propagation passes.
func PropagationRuns() *prometheus.CounterVec {
	RegisterMetrics()
	return propagationRunsTotal
}

// PropagationMatches exposes the counter for violations touched by
// propagation.
func PropagationMatches() *prometheus.CounterVec {
	RegisterMetrics()
	return propagationMatched
}
