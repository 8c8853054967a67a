// Package geo turns a filtered vacancy view into heat-map points at province or district granularity.
package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
)

// ErrUnknownGranularity is returned by ParseGranularity for anything but province/district.
var ErrUnknownGranularity = errors.New("geo: unknown granularity")

// LatLon is a WGS84 point.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Map framing used by the reference heat map.
var (
	MapCenter = LatLon{Lat: -9.5, Lon: -75.0}
	MapZoom   = 4.5
)

// ProvinceCoordinate looks up the built-in centroid of a normalized province name.
func ProvinceCoordinate(name string) (LatLon, bool) {
	c, ok := provinceCoordinates[name]
	return c, ok
}

// ProvinceCount is the number of provinces with a built-in centroid.
func ProvinceCount() int { return len(provinceCoordinates) }

type Granularity string

const (
	Province Granularity = "province"
	District Granularity = "district"
)

// ParseGranularity accepts the English and Spanish names, case-insensitively. Empty means Province.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "province", "provincia":
		return Province, nil
	case "district", "distrito":
		return District, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

// Radius is the heat-map point radius for this granularity.
func (g Granularity) Radius() int {
	if g == District {
		return 12
	}
	return 25
}

// HoverField is the column a point is labelled with.
func (g Granularity) HoverField() string {
	if g == District {
		return dataset.ColDistrict
	}
	return dataset.ColProvince
}

// Point is one plottable aggregate. District is empty for province points.
type Point struct {
	Province string  `json:"province" csv:"province"`
	District string  `json:"district,omitempty" csv:"district"`
	Count    int     `json:"count" csv:"count"`
	Lat      float64 `json:"lat" csv:"lat"`
	Lon      float64 `json:"lon" csv:"lon"`
}

// Result: the map aggregation plus which granularity actually produced it.
// Total is the number of rows aggregated; Unmatched counts the rows whose region has no coordinate.
// For every result, the sum of point counts equals Total - Unmatched.
type Result struct {
	Requested  Granularity `json:"requested"`
	Used       Granularity `json:"used"`
	Points     []Point     `json:"points"`
	Fallback   bool        `json:"fallback"`
	Notice     string      `json:"notice,omitempty"`
	Total      int         `json:"total"`
	Unmatched  int         `json:"unmatched"`
	Radius     int         `json:"radius"`
	HoverField string      `json:"hover_field"`
}

// Empty reports the "no data" state: nothing plottable.
func (r Result) Empty() bool { return len(r.Points) == 0 }

const fallbackNotice = "district coordinates are not loaded; showing the province map instead"

// Aggregate groups view at granularity g. District mode joins against districts; when districts is nil (the
// coordinate file was absent) the province aggregation is returned with Fallback set and Used = Province.
func Aggregate(view *dataset.Table, g Granularity, districts *dataset.DistrictIndex) Result {
	if g == District && districts == nil {
		r := byProvince(view)
		r.Requested = District
		r.Fallback = true
		r.Notice = fallbackNotice
		metrics.MapFallbackTotal.Inc()
		logger.L().Warn("district_map_fallback", "reason", "district_coords_absent", "rows", view.Len())
		return r
	}
	if g == District {
		return byDistrict(view, districts)
	}
	return byProvince(view)
}

// RegionCount is an unjoined group count.
type RegionCount struct {
	Province string
	District string
	Count    int
}

// CountProvinces groups view by PROVINCIA in first-encounter order, before any coordinate join.
func CountProvinces(view *dataset.Table) []RegionCount {
	idx := map[string]int{}
	var out []RegionCount
	view.Each(func(i int, _ []string) {
		p, _ := view.Value(i, dataset.ColProvince)
		k, ok := idx[p]
		if !ok {
			k = len(out)
			idx[p] = k
			out = append(out, RegionCount{Province: p})
		}
		out[k].Count++
	})
	return out
}

// CountDistricts groups view by (PROVINCIA, DISTRITO) in first-encounter order, before any coordinate join.
func CountDistricts(view *dataset.Table) []RegionCount {
	idx := map[dataset.DistrictKey]int{}
	var out []RegionCount
	view.Each(func(i int, _ []string) {
		p, _ := view.Value(i, dataset.ColProvince)
		d, _ := view.Value(i, dataset.ColDistrict)
		key := dataset.DistrictKey{Province: p, District: d}
		k, ok := idx[key]
		if !ok {
			k = len(out)
			idx[key] = k
			out = append(out, RegionCount{Province: p, District: d})
		}
		out[k].Count++
	})
	return out
}

func byProvince(view *dataset.Table) Result {
	r := newResult(Province, view.Len())
	for _, c := range CountProvinces(view) {
		ll, ok := ProvinceCoordinate(c.Province)
		if !ok {
			r.Unmatched += c.Count
			continue
		}
		r.Points = append(r.Points, Point{Province: c.Province, Count: c.Count, Lat: ll.Lat, Lon: ll.Lon})
	}
	sort.SliceStable(r.Points, func(i, j int) bool { return r.Points[i].Count > r.Points[j].Count })
	return r
}

func byDistrict(view *dataset.Table, districts *dataset.DistrictIndex) Result {
	r := newResult(District, view.Len())
	for _, c := range CountDistricts(view) {
		dc, ok := districts.Lookup(c.Province, c.District)
		if !ok {
			r.Unmatched += c.Count
			continue
		}
		r.Points = append(r.Points, Point{Province: c.Province, District: c.District, Count: c.Count, Lat: dc.Lat, Lon: dc.Lon})
	}
	sort.Slice(r.Points, func(i, j int) bool {
		a, b := r.Points[i], r.Points[j]
		if a.Province != b.Province {
			return a.Province < b.Province
		}
		return a.District < b.District
	})
	return r
}

func newResult(g Granularity, total int) Result {
	return Result{
		Requested:  g,
		Used:       g,
		Points:     []Point{},
		Total:      total,
		Radius:     g.Radius(),
		HoverField: g.HoverField(),
	}
}
