package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the service-specific Prometheus metrics
type Metrics struct {
	AnalyticsQueries *prometheus.CounterVec   // query_type, status
	QueryDuration    *prometheus.HistogramVec // query_type
	ReportExports    *prometheus.CounterVec   // report, format, status
	InsightRequests  *prometheus.CounterVec   // source
}
