// Coordinate builder: geocodes every (PROVINCIA, DISTRITO) pair of the vacancy file that the district coordinate
// file does not have yet, then rewrites the coordinate file. Existing rows are never re-queried.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"

	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/geo"
	"plazas-monitor/internal/geocode"
	"plazas-monitor/internal/logger"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	l := logger.Setup()

	cfg := dashboard.ConfigFromEnv()
	opts := dataset.OptionsFromEnv()
	vac, err := dataset.LoadVacancies(cfg.VacanciesPath, opts)
	if err != nil {
		l.Error("vacancies_not_found", "path", cfg.VacanciesPath, "err", err)
		os.Exit(1)
	}
	existing, err := dataset.LoadDistrictCoordinates(cfg.DistrictsPath, opts)
	if err != nil {
		l.Error("district_coords_read_error", "path", cfg.DistrictsPath, "err", err)
		os.Exit(1)
	}

	var pairs []dataset.DistrictKey
	for _, c := range geo.CountDistricts(vac) {
		pairs = append(pairs, dataset.DistrictKey{Province: c.Province, District: c.District})
	}

	interval := time.Second
	if s := os.Getenv("GEOCODE_MIN_INTERVAL_MS"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n >= 0 {
			interval = time.Duration(n) * time.Millisecond
		}
	}
	limit := 0
	if s := os.Getenv("GEOCODE_LIMIT"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n > 0 {
			limit = n
		}
	}
	nom := geocode.New(geocode.WithBaseURL(os.Getenv("NOMINATIM_URL")), geocode.WithMinInterval(interval))
	l.Info("geocode_begin", "pairs", len(pairs), "known", existing.Len(), "limit", limit, "interval_ms", interval.Milliseconds())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rows, st, err := geocode.BuildDistricts(ctx, pairs, existing, nom, limit)
	if err != nil {
		l.Warn("geocode_interrupted", "err", err, "resolved", st.Resolved)
	}
	if err := writeCoordinates(cfg.DistrictsPath, rows); err != nil {
		l.Error("district_coords_write_error", "path", cfg.DistrictsPath, "err", err)
		os.Exit(1)
	}
	l.Info("geocode_done",
		"path", cfg.DistrictsPath,
		"rows", len(rows),
		"kept", st.Kept,
		"resolved", st.Resolved,
		"not_found", st.NotFound,
		"failed", st.Failed,
		"skipped", st.Skipped,
	)
}

// writeCoordinates replaces path atomically with rows under the PROVINCIA,DISTRITO,LAT_DIST,LON_DIST header.
func writeCoordinates(path string, rows []dataset.DistrictCoordinate) error {
	if rows == nil {
		rows = []dataset.DistrictCoordinate{}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".coords-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := gocsv.MarshalFile(&rows, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
