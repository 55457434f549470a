package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dareexchange_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dareexchange_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dareexchange_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dareexchange_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dareexchange_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// DaresSubmitted counts dare submissions by their initial status
	DaresSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dareexchange_dares_submitted_total",
			Help: "Total number of dares submitted",
		},
		[]string{"status"},
	)

	// LikesToggled counts like toggles by direction
	LikesToggled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dareexchange_likes_toggled_total",
			Help: "Total number of like toggles",
		},
		[]string{"direction"},
	)

	// CompletionsRecorded counts accepted completion submissions
	CompletionsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dareexchange_completions_recorded_total",
			Help: "Total number of completions recorded",
		},
	)

	// EmailsSent counts outbound notification emails by result
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dareexchange_emails_sent_total",
			Help: "Total number of notification emails attempted",
		},
		[]string{"kind", "result"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dareexchange_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dareexchange_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of stats cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dareexchange_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of stats cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dareexchange_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
