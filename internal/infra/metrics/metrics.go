// Package metrics provides Prometheus collectors and the echo middleware
// that feeds them.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Authentication outcomes.
const (
	AuthOutcomeAuthorized = "authorized"
	AuthOutcomeDenied     = "denied"
	AuthOutcomeError      = "error"
)

// RouteUnmatched labels requests that matched no route.
const RouteUnmatched = "unmatched"

var (
	// RequestsTotal counts HTTP requests by method, route template and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restapi_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restapi_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthAttemptsTotal counts authentication gate outcomes.
	AuthAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restapi_auth_attempts_total",
			Help: "Authentication attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthAttemptsTotal,
	)
}
