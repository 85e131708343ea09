package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal prometheus.CounterVec

	// Ingestion Metrics
	UploadsTotal       prometheus.CounterVec
	UploadDuration     prometheus.HistogramVec
	RowsInsertedTotal  prometheus.CounterVec
	RowsDroppedTotal   prometheus.CounterVec
	TableReplacesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salesboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "salesboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),

		// Ingestion Metrics
		UploadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_uploads_total",
				Help: "Total upload requests by dataset and outcome",
			},
			[]string{"dataset", "outcome"},
		),
		UploadDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salesboard_upload_duration_seconds",
				Help:    "End-to-end ingestion time per upload in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"dataset"},
		),
		RowsInsertedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_rows_inserted_total",
				Help: "Total rows persisted by dataset",
			},
			[]string{"dataset"},
		),
		RowsDroppedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_rows_dropped_total",
				Help: "Total rows silently dropped during mapping by dataset",
			},
			[]string{"dataset"},
		),
		TableReplacesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salesboard_table_replaces_total",
				Help: "Total destructive replace (truncate-then-insert) operations by dataset",
			},
			[]string{"dataset"},
		),
	}
}
