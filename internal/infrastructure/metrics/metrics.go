package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordOperations tracks record creations and deletions
	RecordOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "starchart_record_operations_total",
		Help: "Total number of DNS record create and delete operations",
	}, []string{"op", "type"})

	// InvalidDomains counts FQDNs rejected for not belonging to the caller
	InvalidDomains = promauto.NewCounter(prometheus.CounterOpts{
		Name: "starchart_invalid_domains_total",
		Help: "Total number of FQDNs rejected as outside the user's base domain",
	})

	// RequestDuration tracks API request processing time
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "starchart_request_duration_seconds",
		Help:    "Histogram of API request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	// DBConnectionsActive tracks open database connections
	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "starchart_db_connections_active",
		Help: "Number of active database connections",
	})
)
