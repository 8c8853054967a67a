package dashboard

import (
	"net/url"
	"strconv"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/filter"
	"plazas-monitor/internal/geo"
	"plazas-monitor/internal/summary"
)

// Query is everything a view depends on besides the snapshot.
type Query struct {
	Selection   filter.Selection
	Granularity geo.Granularity
	TopN        int
}

// Normalized fills defaults: province granularity, summary.DefaultN, canonical selection lists.
func (q Query) Normalized() Query {
	q.Selection = q.Selection.Canonical()
	if q.Granularity == "" {
		q.Granularity = geo.Province
	}
	if q.TopN <= 0 {
		q.TopN = summary.DefaultN
	}
	return q
}

// Key is a stable encoding of the normalized query; equal queries produce equal keys.
func (q Query) Key() string {
	q = q.Normalized()
	v := url.Values{}
	v["province"] = q.Selection.Provinces
	v["district"] = q.Selection.Districts
	v["level"] = q.Selection.Levels
	v["type"] = q.Selection.VacancyTypes
	v.Set("granularity", string(q.Granularity))
	v.Set("top", strconv.Itoa(q.TopN))
	return v.Encode()
}

// View is the full set of outputs the presentation layer renders for one query.
type View struct {
	Version             string           `json:"version"`
	Query               Query            `json:"-"`
	Selection           filter.Selection `json:"selection"`
	TotalRows           int              `json:"total_rows"`
	Rows                int              `json:"rows"`
	Empty               bool             `json:"empty"`
	Options             filter.Options   `json:"options"`
	Map                 geo.Result       `json:"map"`
	MapCenter           geo.LatLon       `json:"map_center"`
	MapZoom             float64          `json:"map_zoom"`
	InstitutionColumn   string           `json:"institution_column,omitempty"`
	InstitutionsEnabled bool             `json:"institutions_enabled"`
	TopInstitutions     []summary.Count  `json:"top_institutions"`
	TopDistricts        []summary.Count  `json:"top_districts"`
	Detail              *dataset.Table   `json:"detail"`

	// Filtered is the post-cascade view; exports read it.
	Filtered *dataset.Table `json:"-"`
}

// Compute runs the cascade and every aggregation for q over s. It has no side effects beyond logging a map fallback.
func Compute(s *Snapshot, q Query) (*View, error) {
	q = q.Normalized()
	filtered := s.cascade.Apply(q.Selection)
	v := &View{
		Version:   s.Version(),
		Query:     q,
		Selection: q.Selection,
		TotalRows: s.Vacancies.Len(),
		Rows:      filtered.Len(),
		Empty:     filtered.Len() == 0,
		Options:   s.cascade.Options(q.Selection),
		Map:       geo.Aggregate(filtered, q.Granularity, s.Districts),
		MapCenter: geo.MapCenter,
		MapZoom:   geo.MapZoom,
		Filtered:  filtered,
	}
	if s.Institution.Resolved {
		top, err := summary.TopN(filtered, s.Institution.Column, q.TopN)
		if err != nil {
			return nil, err
		}
		v.InstitutionColumn = s.Institution.Column
		v.InstitutionsEnabled = true
		v.TopInstitutions = top
	}
	top, err := summary.TopN(filtered, dataset.ColDistrict, q.TopN)
	if err != nil {
		return nil, err
	}
	v.TopDistricts = top
	detail, err := filtered.Project(s.DetailColumns())
	if err != nil {
		return nil, err
	}
	v.Detail = detail
	return v, nil
}
