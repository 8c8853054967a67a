// Entry point: reads configuration, loads the first snapshot and serves the API plus the static UI.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"plazas-monitor/internal/api"
	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
	"plazas-monitor/internal/middleware"
	"plazas-monitor/internal/store"
	"plazas-monitor/internal/utils"
	"plazas-monitor/internal/version"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()
	l.Debug("log_init_ok")
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = "/api"
	}
	l.Debug("config_api_base", "base", apiBase)
	ui := os.Getenv("UI_DIST")
	if ui == "" {
		ui = filepath.Join("ui", "dist")
	}
	l.Debug("config_ui_dir", "dir", ui)

	cfg := dashboard.ConfigFromEnv()
	l.Debug("config_sources", "source", cfg.Source, "vacancies", cfg.VacanciesPath, "districts", cfg.DistrictsPath)

	var vs dashboard.VacancyStore
	if cfg.Source == dashboard.SourcePostgres {
		db, err := utils.OpenPostgresFromEnv()
		if err != nil {
			l.Error("db_open_error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			l.Error("db_ping_error", "err", err)
			os.Exit(1)
		}
		l.Info("db_ping_ok")
		vs = store.AttachDB(db)
	}

	rc := utils.OpenRedisFromEnv()
	if rc == nil {
		l.Info("redis_disabled")
	} else if err := rc.Ping(context.Background()).Err(); err != nil {
		l.Error("redis_ping_error", "err", err)
	} else {
		l.Info("redis_ping_ok")
	}

	loader := dashboard.NewLoader(cfg, dataset.NewCache(dataset.OptionsFromEnv()), vs)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	snap, err := loader.Load(ctx)
	cancel()
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			l.Error("vacancies_not_found", "path", cfg.VacanciesPath, "err", err)
		} else {
			l.Error("snapshot_load_error", "err", err)
		}
		os.Exit(1)
	}
	var holder dashboard.Holder
	holder.Set(snap)

	mux := http.NewServeMux()
	apiMux := api.BuildRoutes(&holder, rc, api.ConfigFromEnv())
	mux.Handle(apiBase+"/", http.StripPrefix(apiBase, apiMux))
	mux.Handle(apiBase+"/metrics", metrics.Handler())
	mux.HandleFunc(apiBase+"/reload", api.ReloadHandler(loader, &holder, os.Getenv("ADMIN_TOKEN")))

	mux.Handle("/", http.FileServer(http.Dir(ui)))
	// NOTE: the UI bundle reads its API base from here
	mux.HandleFunc("/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/javascript; charset=utf-8")
		w.Header().Set("cache-control", "no-store")
		_, _ = w.Write([]byte("window.__API_BASE__='" + apiBase + "'\n"))
		_, _ = w.Write([]byte("window.__COMMIT_SHA__='" + version.Commit + "'\n"))
	})

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	s := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	if os.Getenv("TLS_ENABLE") == "true" {
		certPath := os.Getenv("TLS_CERT_PATH")
		keyPath := os.Getenv("TLS_KEY_PATH")
		if certPath == "" {
			certPath = filepath.Join("data", "certs", "server.crt")
		}
		if keyPath == "" {
			keyPath = filepath.Join("data", "certs", "server.key")
		}
		if err := utils.EnsureSelfSignedCert(certPath, keyPath, "plazas-monitor.local"); err != nil {
			l.Error("tls_cert_error", "err", err)
			os.Exit(1)
		}
		l.Info("listening_tls", "addr", addr, "cert", certPath, "version", snap.Version())
		if err := s.ListenAndServeTLS(certPath, keyPath); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("listen_error", "err", err)
			os.Exit(1)
		}
		return
	}
	l.Info("listening", "addr", addr, "version", snap.Version())
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("listen_error", "err", err)
		os.Exit(1)
	}
}
