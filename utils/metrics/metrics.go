// Package metrics provides Prometheus metrics for qinsight.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qinsight",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "qinsight",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ReportQueriesTotal counts report queries by kind and outcome.
	ReportQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qinsight",
			Name:      "report_queries_total",
			Help:      "Total number of report queries",
		},
		[]string{"report", "status"},
	)

	// TrendCacheHitsTotal counts trend cache lookups by outcome.
	TrendCacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qinsight",
			Name:      "trend_cache_hits_total",
			Help:      "Total number of trend cache lookups",
		},
		[]string{"outcome"},
	)
)

// RecordReportQuery records a report query by kind and outcome.
func RecordReportQuery(report, status string) {
	ReportQueriesTotal.WithLabelValues(report, status).Inc()
}

// RecordCacheLookup records a trend cache lookup outcome.
func RecordCacheLookup(outcome string) {
	TrendCacheHitsTotal.WithLabelValues(outcome).Inc()
}
