// Import tool: copies the vacancy CSV into PostgreSQL as raw text columns, replacing the table content.
// Usage: plazas-ingest [csv-path]; VACANCIES_PATH and VACANCIES_TABLE otherwise.
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/migrate"
	"plazas-monitor/internal/store"
	"plazas-monitor/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()

	cfg := dashboard.ConfigFromEnv()
	path := cfg.VacanciesPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	f, err := os.Open(path)
	if err != nil {
		l.Error("vacancies_open_error", "path", path, "err", err)
		os.Exit(1)
	}
	header, rows, err := dataset.ReadRecords(f, dataset.OptionsFromEnv())
	_ = f.Close()
	if err != nil {
		l.Error("vacancies_read_error", "path", path, "err", err)
		os.Exit(1)
	}
	l.Info("vacancies_read_ok", "path", path, "rows", len(rows), "columns", len(header))

	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := migrate.EnsureVacancyTable(db, cfg.Table, header); err != nil {
		l.Error("schema_error", "table", cfg.Table, "err", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	n, err := store.AttachDB(db).ReplaceVacancies(ctx, cfg.Table, header, rows)
	if err != nil {
		l.Error("ingest_error", "table", cfg.Table, "err", err)
		os.Exit(1)
	}
	l.Info("ingest_done", "table", cfg.Table, "rows", n)
}
