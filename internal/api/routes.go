// Package api: registers the HTTP routes so the entry point only wires dependencies and mounts them under API_BASE.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/export"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
	"plazas-monitor/internal/version"
)

// Config: response cache TTL and the default ranking length.
type Config struct {
	CacheTTL    time.Duration
	DefaultTopN int
}

// ConfigFromEnv reads CACHE_TTL_S (default 3600) and TOP_N (default 15).
func ConfigFromEnv() Config {
	c := Config{CacheTTL: time.Hour, DefaultTopN: 15}
	if s := os.Getenv("CACHE_TTL_S"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n > 0 {
			c.CacheTTL = time.Duration(n) * time.Second
		}
	}
	if s := os.Getenv("TOP_N"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n > 0 {
			c.DefaultTopN = n
		}
	}
	return c
}

type errorBody struct {
	Error string `json:"error"`
}

type healthBody struct {
	Status    string `json:"status"`
	Rows      int    `json:"rows"`
	Districts int    `json:"districts"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// BuildRoutes returns the API mux. rc may be nil, which disables response caching.
func BuildRoutes(h *dashboard.Holder, rc *redis.Client, cfg Config) *http.ServeMux {
	if cfg.DefaultTopN <= 0 {
		cfg.DefaultTopN = 15
	}
	apiMux := http.NewServeMux()

	apiMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		s := h.Current()
		if s == nil {
			writeJSON(w, http.StatusServiceUnavailable, healthBody{Status: "loading", Commit: version.Commit})
			return
		}
		writeJSON(w, http.StatusOK, healthBody{
			Status:    "ok",
			Rows:      s.Vacancies.Len(),
			Districts: s.Districts.Len(),
			Version:   s.Version(),
			Commit:    version.Commit,
		})
	})

	apiMux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		start := time.Now()
		metrics.DashboardRequestsTotal.Inc()
		s, q, ok := prepare(w, r, h, cfg)
		if !ok {
			return
		}
		key := "dash:" + s.Version() + ":" + q.Key()
		if b, hit := cacheGet(r.Context(), rc, key); hit {
			w.Header().Set("x-cache", "hit")
			writeRaw(w, b)
			return
		}
		v, err := dashboard.Compute(s, q)
		if err != nil {
			logger.L().Error("dashboard_compute_error", "err", err)
			writeError(w, http.StatusInternalServerError, "compute failed")
			return
		}
		if v.Empty {
			metrics.EmptyViewsTotal.Inc()
		}
		b, err := json.Marshal(v)
		if err != nil {
			logger.L().Error("dashboard_encode_error", "err", err)
			writeError(w, http.StatusInternalServerError, "encode failed")
			return
		}
		cacheSet(r.Context(), rc, key, b, cfg.CacheTTL)
		metrics.DashboardDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		w.Header().Set("x-cache", "miss")
		writeRaw(w, b)
	})

	apiMux.HandleFunc("/export/detail.csv", exportHandler(h, cfg, "csv", func(w http.ResponseWriter, v *dashboard.View) error {
		w.Header().Set("content-type", "text/csv; charset=utf-8")
		w.Header().Set("content-disposition", `attachment; filename="plazas.csv"`)
		return export.WriteDetailCSV(w, v.Detail)
	}))
	apiMux.HandleFunc("/export/detail.xlsx", exportHandler(h, cfg, "xlsx", func(w http.ResponseWriter, v *dashboard.View) error {
		w.Header().Set("content-type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("content-disposition", `attachment; filename="plazas.xlsx"`)
		return export.WriteDetailXLSX(w, v.Detail)
	}))
	apiMux.HandleFunc("/export/map.csv", exportHandler(h, cfg, "map_csv", func(w http.ResponseWriter, v *dashboard.View) error {
		w.Header().Set("content-type", "text/csv; charset=utf-8")
		w.Header().Set("content-disposition", `attachment; filename="mapa.csv"`)
		return export.WritePointsCSV(w, v.Map.Points)
	}))

	return apiMux
}

// prepare resolves the current snapshot and parses the query, answering the request itself on failure.
func prepare(w http.ResponseWriter, r *http.Request, h *dashboard.Holder, cfg Config) (*dashboard.Snapshot, dashboard.Query, bool) {
	s := h.Current()
	if s == nil {
		writeError(w, http.StatusServiceUnavailable, "dataset not loaded")
		return nil, dashboard.Query{}, false
	}
	q, err := ParseQuery(r.URL.Query(), cfg.DefaultTopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, dashboard.Query{}, false
	}
	return s, q, true
}

func exportHandler(h *dashboard.Holder, cfg Config, format string, write func(http.ResponseWriter, *dashboard.View) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		metrics.ExportRequestsTotal.WithLabelValues(format).Inc()
		s, q, ok := prepare(w, r, h, cfg)
		if !ok {
			return
		}
		v, err := dashboard.Compute(s, q)
		if err != nil {
			logger.L().Error("export_compute_error", "format", format, "err", err)
			writeError(w, http.StatusInternalServerError, "compute failed")
			return
		}
		w.Header().Set("cache-control", "no-store")
		if err := write(w, v); err != nil {
			logger.L().Error("export_write_error", "format", format, "err", err)
		}
	}
}

func writeRaw(w http.ResponseWriter, b []byte) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	_, _ = w.Write(b)
}

func cacheGet(ctx context.Context, rc *redis.Client, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	s, err := rc.Get(ctx, key).Result()
	if err != nil || s == "" {
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.L().Debug("redis_get_error", "key", key, "err", err)
		}
		metrics.RedisMissesTotal.Inc()
		return nil, false
	}
	metrics.RedisHitsTotal.Inc()
	return []byte(s), true
}

func cacheSet(ctx context.Context, rc *redis.Client, key string, b []byte, ttl time.Duration) {
	if rc == nil {
		return
	}
	if err := rc.Set(ctx, key, string(b), ttl).Err(); err != nil {
		logger.L().Debug("redis_set_error", "key", key, "err", err)
	}
}
