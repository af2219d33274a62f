package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catalogsearch"

// Search and catalog Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search pipeline duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"mode"}, // "fuzzy" / "fallback"
	)

	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of matching records per search after filtering",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	IndexBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_build_duration_seconds",
			Help:      "Search index rebuild duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	IndexedRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "indexed_records",
			Help:      "Records in the current search index",
		},
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Catalog cache lookups and reloads",
		},
		[]string{"result"}, // "hit" / "miss" / "reload" / "stale" / "error"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and catalog metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResultsTotal)
	prometheus.MustRegister(IndexBuildDuration)
	prometheus.MustRegister(IndexedRecords)
	prometheus.MustRegister(CatalogCacheTotal)
	searchMetricsRegistered = true
}

// SearchRecorder feeds search telemetry into the package metrics.
type SearchRecorder struct{}

// ObserveSearch records one pipeline run.
func (SearchRecorder) ObserveSearch(d time.Duration, total int, fallback bool) {
	mode := "fuzzy"
	if fallback {
		mode = "fallback"
	}
	SearchDuration.WithLabelValues(mode).Observe(d.Seconds())
	SearchResultsTotal.Observe(float64(total))
}

// ObserveIndexBuild records one index rebuild.
func (SearchRecorder) ObserveIndexBuild(d time.Duration, size int) {
	IndexBuildDuration.Observe(d.Seconds())
	IndexedRecords.Set(float64(size))
}
