// Package dashboard is the pure core behind the dashboard: (snapshot, query) -> view. Snapshots are loaded from a
// file or Postgres and swapped atomically on reload.
package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/slices"

	"plazas-monitor/internal/columns"
	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/filter"
)

// ErrMissingColumn: the vacancy table lacks PROVINCIA or DISTRITO.
var ErrMissingColumn = errors.New("dashboard: required column missing")

// Snapshot is the immutable pair of loaded tables plus the column decisions made once per load.
type Snapshot struct {
	Vacancies   *dataset.Table
	Districts   *dataset.DistrictIndex
	Institution columns.Result
	Level       columns.Result
	LoadedAt    time.Time

	cascade *filter.Cascade
	version string
}

// NewSnapshot resolves the institution and level columns of vacancies. districts may be nil (coordinate file absent).
func NewSnapshot(vacancies *dataset.Table, districts *dataset.DistrictIndex) (*Snapshot, error) {
	for _, c := range []string{dataset.ColProvince, dataset.ColDistrict} {
		if !vacancies.Has(c) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	cols := vacancies.Columns()
	s := &Snapshot{
		Vacancies:   vacancies,
		Districts:   districts,
		Institution: columns.Institution.Resolve(cols),
		Level:       columns.Level.Resolve(cols),
		LoadedAt:    time.Now(),
	}
	s.cascade = filter.New(vacancies, s.Level)
	s.version = s.computeVersion()
	return s, nil
}

// Version identifies the snapshot content; it changes whenever either source changes.
func (s *Snapshot) Version() string { return s.version }

// DistrictsAvailable reports whether district-granularity maps can be served without fallback.
func (s *Snapshot) DistrictsAvailable() bool { return s.Districts != nil }

// DetailColumns is the curated projection for the detail view: the institution column first when it resolved, then
// whichever of PROVINCIA, DISTRITO, TIPO_VACANTE, the level column, MOTIVO DE LA VACANCIA and CÓDIGO DE PLAZA exist.
func (s *Snapshot) DetailColumns() []string {
	var out []string
	if s.Institution.Resolved {
		out = append(out, s.Institution.Column)
	}
	candidates := []string{dataset.ColProvince, dataset.ColDistrict, dataset.ColVacancyType}
	if s.Level.Resolved {
		candidates = append(candidates, s.Level.Column)
	}
	candidates = append(candidates, dataset.ColReason, dataset.ColCode)
	for _, c := range candidates {
		if s.Vacancies.Has(c) && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Snapshot) computeVersion() string {
	h := sha256.New()
	if s.Vacancies.Hash != "" {
		h.Write([]byte(s.Vacancies.Hash))
	} else {
		h.Write([]byte(strconv.FormatInt(s.LoadedAt.UnixNano(), 10)))
	}
	h.Write([]byte{'|'})
	if s.Districts != nil {
		h.Write([]byte(s.Districts.Hash))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
