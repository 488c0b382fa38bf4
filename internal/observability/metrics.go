// Package observability provides metrics and tracing instrumentation.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ReactionsTotal counts applied reactions by kind and outcome
	// (created, replaced, noop).
	ReactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_reactions_total",
		Help: "Total number of reaction writes by kind and outcome",
	}, []string{"kind", "outcome"})

	// BookmarkToggles counts bookmark toggles by resulting state.
	BookmarkToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_bookmark_toggles_total",
		Help: "Total number of bookmark toggles by resulting state",
	}, []string{"state"})

	// NotificationDispatchFailures counts swallowed notification errors.
	NotificationDispatchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_notification_dispatch_failures_total",
		Help: "Total number of notification dispatch failures (absorbed)",
	})

	// FeedQueries counts feed listings by filter shape.
	FeedQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_feed_queries_total",
		Help: "Total number of feed queries by filter",
	}, []string{"filter"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct{}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
