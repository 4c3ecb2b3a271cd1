package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	analyticsRequestsTotal *prometheus.CounterVec
	analyticsLatency       *prometheus.HistogramVec
	analyticsErrorsTotal   *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used for analytics observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		analyticsRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Total number of analytics API requests served.",
		}, []string{"method", "route", "status"})

		analyticsLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "analytics_latency_seconds",
			Help:    "Latency distribution for analytics API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		analyticsErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_errors_total",
			Help: "Total number of error responses returned by analytics endpoints.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(analyticsRequestsTotal, analyticsLatency, analyticsErrorsTotal)
	})
}

// AnalyticsRequests exposes the counter for analytics requests.
func AnalyticsRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return analyticsRequestsTotal
}

// AnalyticsLatency exposes the latency histogram for analytics requests.
func AnalyticsLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return analyticsLatency
}

// AnalyticsErrors exposes the counter for analytics error responses.
func AnalyticsErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return analyticsErrorsTotal
}
