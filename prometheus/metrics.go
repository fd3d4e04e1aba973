package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"inventory-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Product metrics
	ProductOperationsCounter prometheus.CounterVec

	initOnce sync.Once
)

// InitMetrics registers Prometheus metrics with the configured prefix. Safe to
// call more than once; registration happens on the first call.
func InitMetrics(cfg *config.Config) {
	initOnce.Do(func() {
		prefix := cfg.Metrics.Prefix

		HttpRequestsTotal = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HttpRequestDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		DbOperationDuration = *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_db_operation_duration_seconds",
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		ProductOperationsCounter = *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_product_operations_total",
				Help: "Total number of product operations by outcome",
			},
			[]string{"operation", "outcome"},
		)
	})
}

// TrackDBOperation returns a function that records the duration of a database
// operation when deferred with the operation start time.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation, outcome string) {
	ProductOperationsCounter.WithLabelValues(operation, outcome).Inc()
}
