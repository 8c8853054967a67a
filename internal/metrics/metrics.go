package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DashboardRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plazas_dashboard_requests_total",
		Help: "Total number of /dashboard requests",
	})
	DashboardDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plazas_dashboard_duration_ms",
		Help:    "Dashboard recomputation duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	EmptyViewsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plazas_empty_views_total",
		Help: "Total number of dashboard views whose filtered table was empty",
	})
	RedisHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plazas_redis_hits_total",
		Help: "Total redis cache hits",
	})
	RedisMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plazas_redis_misses_total",
		Help: "Total redis cache misses",
	})
	MapFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plazas_map_fallback_total",
		Help: "District map requests served at province granularity because no district coordinates were loaded",
	})
	ExportRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plazas_export_requests_total",
		Help: "Total export requests by format",
	}, []string{"format"})
	DatasetLoadDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plazas_dataset_load_duration_ms",
		Help:    "Dataset load duration in milliseconds",
		Buckets: []float64{5, 20, 50, 100, 250, 500, 1000, 5000},
	}, []string{"dataset"})
	DatasetRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plazas_dataset_rows",
		Help: "Rows held by the current snapshot",
	}, []string{"dataset"})
)

func init() {
	prometheus.MustRegister(DashboardRequestsTotal)
	prometheus.MustRegister(DashboardDurationMs)
	prometheus.MustRegister(EmptyViewsTotal)
	prometheus.MustRegister(RedisHitsTotal)
	prometheus.MustRegister(RedisMissesTotal)
	prometheus.MustRegister(MapFallbackTotal)
	prometheus.MustRegister(ExportRequestsTotal)
	prometheus.MustRegister(DatasetLoadDurationMs)
	prometheus.MustRegister(DatasetRows)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
