package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus metrics. HTTP request metrics are
// registered separately by the HTTP middleware.
type Metrics struct {
	// Transaction metrics
	TransactionsCreated   prometheus.Counter
	TransactionsConfirmed prometheus.Counter
	TransactionsCancelled prometheus.Counter
	TransactionsDeleted   prometheus.Counter
	TransactionAmount     prometheus.Histogram
	ValidationFailures    *prometheus.CounterVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Outbox metrics
	OutboxEventsPublished prometheus.Counter
	OutboxPublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_confirmed_total",
			Help: "Total number of transactions confirmed",
		}),
		TransactionsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_cancelled_total",
			Help: "Total number of transactions cancelled",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_deleted_total",
			Help: "Total number of draft transactions deleted",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transaction_amount",
			Help:    "Distribution of transaction headline amounts",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_validation_failures_total",
			Help: "Total number of rejected transaction submissions by rule class",
		}, []string{"rule"}),

		DBQueries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_db_queries_total",
			Help: "Total number of database queries",
		}, []string{"operation"}),
		DBDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		DBErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_db_errors_total",
			Help: "Total number of database errors",
		}, []string{"operation"}),

		RedisOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_redis_operations_total",
			Help: "Total number of Redis operations",
		}, []string{"operation"}),
		RedisErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_redis_errors_total",
			Help: "Total number of Redis errors",
		}, []string{"operation"}),

		OutboxEventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_outbox_events_published_total",
			Help: "Total number of outbox events published",
		}),
		OutboxPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_outbox_publish_errors_total",
			Help: "Total number of outbox publish failures",
		}),
	}
}
