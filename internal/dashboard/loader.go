package dashboard

import (
	"context"
	"errors"
	"os"
	"sync/atomic"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
	"plazas-monitor/internal/store"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config selects where a snapshot comes from. District coordinates always come from a file.
type Config struct {
	Source        string
	VacanciesPath string
	DistrictsPath string
	Table         string
}

// ConfigFromEnv reads VACANCIES_SOURCE, VACANCIES_PATH, DISTRICT_COORDS_PATH and VACANCIES_TABLE.
func ConfigFromEnv() Config {
	c := Config{
		Source:        os.Getenv("VACANCIES_SOURCE"),
		VacanciesPath: os.Getenv("VACANCIES_PATH"),
		DistrictsPath: os.Getenv("DISTRICT_COORDS_PATH"),
		Table:         os.Getenv("VACANCIES_TABLE"),
	}
	if c.Source == "" {
		c.Source = SourceFile
	}
	if c.VacanciesPath == "" {
		c.VacanciesPath = "data_plazas_completa.csv"
	}
	if c.DistrictsPath == "" {
		c.DistrictsPath = "coords_distritos.csv"
	}
	if c.Table == "" {
		c.Table = "plazas"
	}
	return c
}

// VacancyStore is the database side of a snapshot load.
type VacancyStore interface {
	LoadVacancies(ctx context.Context, table string) (*dataset.Table, error)
}

var _ VacancyStore = (*store.Store)(nil)

// Loader builds snapshots. The file source goes through the shared dataset.Cache.
type Loader struct {
	cfg   Config
	cache *dataset.Cache
	db    VacancyStore
}

// NewLoader: db may be nil when Source is SourceFile.
func NewLoader(cfg Config, cache *dataset.Cache, db VacancyStore) *Loader {
	return &Loader{cfg: cfg, cache: cache, db: db}
}

func (l *Loader) Config() Config { return l.cfg }

// Load returns a snapshot from the memoized tables.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	var (
		vac *dataset.Table
		err error
	)
	switch l.cfg.Source {
	case SourcePostgres:
		if l.db == nil {
			return nil, errors.New("dashboard: postgres source without a database")
		}
		vac, err = l.db.LoadVacancies(ctx, l.cfg.Table)
	default:
		vac, err = l.cache.Vacancies(l.cfg.VacanciesPath)
	}
	if err != nil {
		return nil, err
	}
	districts, err := l.cache.Districts(l.cfg.DistrictsPath)
	if err != nil {
		return nil, err
	}
	s, err := NewSnapshot(vac, districts)
	if err != nil {
		return nil, err
	}
	metrics.DatasetRows.WithLabelValues("vacancies").Set(float64(vac.Len()))
	metrics.DatasetRows.WithLabelValues("district_coords").Set(float64(districts.Len()))
	logger.L().Info("snapshot_ready",
		"version", s.Version(),
		"source", vac.Source,
		"rows", vac.Len(),
		"districts", districts.Len(),
		"institution_column", s.Institution.Column,
		"level_column", s.Level.Column,
	)
	if !s.Institution.Resolved {
		logger.L().Warn("column_unresolved", "field", s.Institution.Field)
	}
	if !s.Level.Resolved {
		logger.L().Warn("column_unresolved", "field", s.Level.Field)
	}
	return s, nil
}

// Reload drops the memoized files and loads again.
func (l *Loader) Reload(ctx context.Context) (*Snapshot, error) {
	l.cache.Invalidate(l.cfg.VacanciesPath)
	l.cache.Invalidate(l.cfg.DistrictsPath)
	return l.Load(ctx)
}

// Holder: lock-free current snapshot. Readers never block on a reload in progress.
type Holder struct{ v atomic.Pointer[Snapshot] }

// Current returns nil until the first Set.
func (h *Holder) Current() *Snapshot { return h.v.Load() }

func (h *Holder) Set(s *Snapshot) { h.v.Store(s) }
