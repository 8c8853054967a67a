// Package filter implements the ordered province -> district -> level -> vacancy type cascade over a vacancy table.
package filter

import (
	"golang.org/x/exp/slices"

	"plazas-monitor/internal/columns"
	"plazas-monitor/internal/dataset"
)

// Selection: the user's chosen values per stage. An empty list means no restriction for that stage.
type Selection struct {
	Provinces    []string `json:"provinces,omitempty"`
	Districts    []string `json:"districts,omitempty"`
	Levels       []string `json:"levels,omitempty"`
	VacancyTypes []string `json:"vacancy_types,omitempty"`
}

// Canonical returns a copy with every list sorted and deduplicated, so equal selections compare equal.
func (s Selection) Canonical() Selection {
	norm := func(v []string) []string {
		if len(v) == 0 {
			return nil
		}
		out := slices.Clone(v)
		slices.Sort(out)
		return slices.Compact(out)
	}
	return Selection{
		Provinces:    norm(s.Provinces),
		Districts:    norm(s.Districts),
		Levels:       norm(s.Levels),
		VacancyTypes: norm(s.VacancyTypes),
	}
}

// Options: candidate values offered for each stage, sorted and deduplicated.
// Levels is nil when the level column did not resolve; VacancyTypes is nil when TIPO_VACANTE is absent.
type Options struct {
	Provinces          []string `json:"provinces"`
	Districts          []string `json:"districts"`
	Levels             []string `json:"levels"`
	VacancyTypes       []string `json:"vacancy_types"`
	LevelEnabled       bool     `json:"level_enabled"`
	VacancyTypeEnabled bool     `json:"vacancy_type_enabled"`
}

// Stage is one filter step bound to a concrete column.
type Stage struct {
	Name   string
	Column string
	pick   func(Selection) []string
}

// Cascade applies the stages in fixed order over an immutable base table.
type Cascade struct {
	base   *dataset.Table
	stages []Stage
	level  string
}

// New builds the cascade for base. Stages whose column is unavailable are not part of the cascade at all:
// an unresolved level drops the level stage and a table without TIPO_VACANTE drops the vacancy type stage.
func New(base *dataset.Table, level columns.Result) *Cascade {
	c := &Cascade{base: base}
	c.stages = append(c.stages,
		Stage{Name: "province", Column: dataset.ColProvince, pick: func(s Selection) []string { return s.Provinces }},
		Stage{Name: "district", Column: dataset.ColDistrict, pick: func(s Selection) []string { return s.Districts }},
	)
	if level.Resolved && base.Has(level.Column) {
		c.level = level.Column
		c.stages = append(c.stages, Stage{Name: "level", Column: level.Column, pick: func(s Selection) []string { return s.Levels }})
	}
	if base.Has(dataset.ColVacancyType) {
		c.stages = append(c.stages, Stage{Name: "vacancy_type", Column: dataset.ColVacancyType, pick: func(s Selection) []string { return s.VacancyTypes }})
	}
	return c
}

// Stages lists the active stages in application order.
func (c *Cascade) Stages() []Stage { return append([]Stage(nil), c.stages...) }

// Apply runs every active stage left to right; each stage sees the previous stage's view. The base table is never
// modified. Selections for inactive stages are ignored.
func (c *Cascade) Apply(sel Selection) *dataset.Table {
	view := c.base
	for _, st := range c.stages {
		view = view.WhereIn(st.Column, st.pick(sel))
	}
	return view
}

// Options computes the candidate lists for sel. Only the district list depends on the selection: it is drawn from
// the rows left after the province stage.
func (c *Cascade) Options(sel Selection) Options {
	o := Options{
		Provinces: c.base.Distinct(dataset.ColProvince),
		Districts: c.base.WhereIn(dataset.ColProvince, sel.Provinces).Distinct(dataset.ColDistrict),
	}
	if c.level != "" {
		o.LevelEnabled = true
		o.Levels = c.base.Distinct(c.level)
	}
	if c.base.Has(dataset.ColVacancyType) {
		o.VacancyTypeEnabled = true
		o.VacancyTypes = c.base.Distinct(dataset.ColVacancyType)
	}
	return o
}
