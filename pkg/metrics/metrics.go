package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP handlers, labelled by method and path.
	HTTPRequestLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_latency_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Total HTTP requests served, labelled by method, path and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// Total orders created.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	// Spreadsheet rows processed by the import pipeline, labelled by outcome
	// (success, failed, pending_price, skipped).
	ImportRowsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "import_rows_total",
		Help: "Total number of imported spreadsheet rows by outcome",
	}, []string{"outcome"})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestLatency,
		HTTPRequestsTotal,
		OrdersCreated,
		ImportRowsTotal,
	)
}
