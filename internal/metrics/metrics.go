// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pepper_match_runs_total",
			Help: "Matching runs by mode (search, browse)",
		},
		[]string{"mode"},
	)

	MatchEliminated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pepper_match_eliminated_total",
			Help: "Items dropped by hard criteria",
		},
		[]string{"mode"},
	)

	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pepper_match_duration_seconds",
			Help:    "Time spent scoring a catalog",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"mode"},
	)

	GuideGenerations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pepper_guide_generations_total",
			Help: "Growing guides generated",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pepper_cache_hits_total",
			Help: "Result cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pepper_cache_misses_total",
			Help: "Result cache misses",
		},
		[]string{"cache"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pepper_api_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pepper_api_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pepper_catalog_items",
			Help: "Varieties currently loaded",
		},
	)
)

// RecordMatch records a run that scored total items and returned kept of them.
func RecordMatch(mode string, total, kept int, d time.Duration) {
	MatchRuns.WithLabelValues(mode).Inc()
	MatchEliminated.WithLabelValues(mode).Add(float64(total - kept))
	MatchDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func RecordCache(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}

func RecordAPIRequest(method, route, status string, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
