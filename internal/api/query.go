package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"plazas-monitor/internal/dashboard"
	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/filter"
	"plazas-monitor/internal/geo"
)

// maxTopN bounds the ranking length a client can ask for.
const maxTopN = 500

// ParseQuery maps query parameters to a dashboard query. province/district/level/type are repeatable; province and
// district values get the same trim/upper-case as the loaded data. top defaults to defaultTop.
func ParseQuery(v url.Values, defaultTop int) (dashboard.Query, error) {
	g, err := geo.ParseGranularity(v.Get("granularity"))
	if err != nil {
		return dashboard.Query{}, err
	}
	top := defaultTop
	if s := strings.TrimSpace(v.Get("top")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxTopN {
			return dashboard.Query{}, fmt.Errorf("top must be between 1 and %d", maxTopN)
		}
		top = n
	}
	q := dashboard.Query{
		Selection: filter.Selection{
			Provinces:    values(v["province"], dataset.NormalizeRegion),
			Districts:    values(v["district"], dataset.NormalizeRegion),
			Levels:       values(v["level"], nil),
			VacancyTypes: values(v["type"], nil),
		},
		Granularity: g,
		TopN:        top,
	}
	return q.Normalized(), nil
}

// values drops blank entries and applies norm when given.
func values(in []string, norm func(string) string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if norm != nil {
			s = norm(s)
		}
		out = append(out, s)
	}
	return out
}
