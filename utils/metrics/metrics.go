// Package metrics exposes discovery engine counters on the default
// prometheus registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discovery_pages_fetched_total",
		Help: "Result pages fetched from the search backend.",
	})

	FetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discovery_fetch_failures_total",
		Help: "Failed page fetches, retryable by re-triggering the advance.",
	})

	StaleResponsesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discovery_stale_responses_dropped_total",
		Help: "Search responses discarded because their query generation was superseded.",
	})

	OptimisticPatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "favorite_optimistic_patches_total",
		Help: "Optimistic favorite patches applied across cached result shapes.",
	})

	OptimisticRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "favorite_optimistic_rollbacks_total",
		Help: "Optimistic favorite patches rolled back after backend rejection.",
	})

	CacheEntriesSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "result_cache_entries_swept_total",
		Help: "Stale result cache entries evicted by the sweeper job.",
	})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_search_duration_seconds",
		Help:    "Latency of search backend calls.",
		Buckets: prometheus.DefBuckets,
	})
)
