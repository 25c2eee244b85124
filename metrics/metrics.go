// Package metrics registers the Prometheus collectors shared by the search
// driver, the logger and the HTTP daemon.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for SearchRunsTotal.
const (
	OutcomeFound     = "found"
	OutcomeNoPath    = "no_path"
	OutcomeCancelled = "cancelled"
)

// =============================================================================
// Search Metrics
// =============================================================================

var (
	// SearchRunsTotal counts finished runs by algorithm and outcome
	SearchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_search_runs_total",
			Help: "Total number of search runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	// SearchStepsTotal counts driver steps, terminal steps included
	SearchStepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_search_steps_total",
			Help: "Total number of search driver steps",
		},
		[]string{"algorithm"},
	)

	SearchProcessedCells = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_processed_cells",
			Help:    "Cells fully processed before a run terminated",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		},
		[]string{"algorithm"},
	)

	SearchPathLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_path_length",
			Help:    "Edge count of found paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"algorithm"},
	)

	SearchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall-clock duration of search runs, pacing delays included",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"algorithm"},
	)
)

// =============================================================================
// HTTP and Logging Metrics
// =============================================================================

var (
	// HTTPRequestsTotal counts handled requests by route name and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridpath_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)
)

// ObserveRun records the terminal state of one search run.
// pathLen is ignored unless outcome is OutcomeFound.
func ObserveRun(algorithm, outcome string, processed, pathLen int, elapsed time.Duration) {
	SearchRunsTotal.WithLabelValues(algorithm, outcome).Inc()
	SearchProcessedCells.WithLabelValues(algorithm).Observe(float64(processed))
	SearchDurationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == OutcomeFound {
		SearchPathLength.WithLabelValues(algorithm).Observe(float64(pathLen))
	}
}
