// Package metrics provides Prometheus metrics for the tour guide service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream names used as label values.
const (
	UpstreamRealtime   = "openai_realtime"
	UpstreamChat       = "openai_chat"
	UpstreamDirections = "google_directions"
)

// Outcome label values for upstream calls.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourguide",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tourguide",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// UpstreamRequestsTotal counts outbound calls by upstream and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tourguide",
			Name:      "upstream_requests_total",
			Help:      "Total number of calls to external APIs",
		},
		[]string{"upstream", "outcome"},
	)

	// UpstreamDuration tracks outbound call latency.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tourguide",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to external APIs",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"upstream"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, endpoint, status string, seconds float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

// RecordUpstream records a completed outbound call.
func RecordUpstream(upstream string, err error, seconds float64) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, outcome).Inc()
	UpstreamDuration.WithLabelValues(upstream).Observe(seconds)
}
