// Package metrics registers the Prometheus instruments exposed on
// /metrics: one family per external-provider endpoint plus cache and
// planning-run counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AmapRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetspot_amap_requests_total",
		Help: "Total AMap REST requests",
	}, []string{"endpoint"})
	AmapFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetspot_amap_fail_total",
		Help: "Total AMap REST failures",
	}, []string{"endpoint"})
	AmapDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meetspot_amap_duration_ms",
		Help:    "AMap REST call duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000},
	}, []string{"endpoint"})

	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetspot_cache_hits_total",
		Help: "Total lookup cache hits",
	}, []string{"cache"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetspot_cache_misses_total",
		Help: "Total lookup cache misses",
	}, []string{"cache"})

	RunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meetspot_runs_total",
		Help: "Total planning runs",
	})
	RunFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meetspot_run_failures_total",
		Help: "Total planning runs that ended in an unrecoverable failure",
	})
)

func init() {
	prometheus.MustRegister(AmapRequestsTotal)
	prometheus.MustRegister(AmapFailTotal)
	prometheus.MustRegister(AmapDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RunsTotal)
	prometheus.MustRegister(RunFailuresTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
