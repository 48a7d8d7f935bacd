// SPDX-License-Identifier: MIT

package cavern

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for metricPlannerQueries.
const (
	resultFound       = "found"
	resultUnreachable = "unreachable"
	resultInvalid     = "invalid"
	resultCanceled    = "canceled"
)

var (
	metricPlannerQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caverns",
		Subsystem: "planner",
		Name:      "queries_total",
		Help:      "Total number of path queries, by outcome",
	}, []string{"result"})
	metricPlannerCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "caverns",
		Subsystem: "planner",
		Name:      "cache_hits_total",
		Help:      "Total number of path queries answered from the result cache",
	})
	metricPlannerSearchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "caverns",
		Subsystem: "planner",
		Name:      "search_seconds",
		Help:      "Time spent in uncached searches",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	})
	metricPlannerSettled = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "caverns",
		Subsystem: "planner",
		Name:      "settled_caverns",
		Help:      "Number of caverns settled per uncached search",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	})
)

func init() {
	// Register every outcome so the counters are present even when zero.
	for _, r := range []string{resultFound, resultUnreachable, resultInvalid, resultCanceled} {
		metricPlannerQueries.WithLabelValues(r)
	}
}
