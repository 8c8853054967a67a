package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"plazas-monitor/internal/columns"
	"plazas-monitor/internal/logger"
	"plazas-monitor/internal/metrics"
)

// DistrictKey is the (province, district) join key, already normalized.
type DistrictKey struct {
	Province string
	District string
}

// DistrictCoordinate is one row of the coordinate file. The csv tags are the on-disk column names.
type DistrictCoordinate struct {
	Province string  `csv:"PROVINCIA" json:"province"`
	District string  `csv:"DISTRITO" json:"district"`
	Lat      float64 `csv:"LAT_DIST" json:"lat"`
	Lon      float64 `csv:"LON_DIST" json:"lon"`
}

// DistrictIndex is the read-only lookup from DistrictKey to coordinates.
type DistrictIndex struct {
	byKey   map[DistrictKey]DistrictCoordinate
	order   []DistrictKey
	Source  string
	Hash    string
	Skipped int
}

func NewDistrictIndex(rows []DistrictCoordinate) *DistrictIndex {
	idx := &DistrictIndex{byKey: make(map[DistrictKey]DistrictCoordinate, len(rows))}
	for _, c := range rows {
		idx.add(c)
	}
	return idx
}

func (d *DistrictIndex) add(c DistrictCoordinate) bool {
	c.Province = NormalizeRegion(c.Province)
	c.District = NormalizeRegion(c.District)
	k := DistrictKey{Province: c.Province, District: c.District}
	if _, dup := d.byKey[k]; dup {
		return false
	}
	d.byKey[k] = c
	d.order = append(d.order, k)
	return true
}

// Lookup finds the coordinates of a district. A nil index never matches.
func (d *DistrictIndex) Lookup(province, district string) (DistrictCoordinate, bool) {
	if d == nil {
		return DistrictCoordinate{}, false
	}
	c, ok := d.byKey[DistrictKey{Province: province, District: district}]
	return c, ok
}

func (d *DistrictIndex) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byKey)
}

// Coordinates returns the rows in file order.
func (d *DistrictIndex) Coordinates() []DistrictCoordinate {
	if d == nil {
		return nil
	}
	out := make([]DistrictCoordinate, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.byKey[k])
	}
	return out
}

// NormalizeRegion applies the cleanup Normalize applies to a PROVINCIA/DISTRITO cell. Callers use it to match
// user-supplied names against loaded keys.
func NormalizeRegion(s string) string {
	s = strings.TrimSpace(s)
	if IsMissing(s) {
		return Sentinel
	}
	return cases.Upper(language.Spanish).String(s)
}

// ErrInvalidCoordinates: the coordinate file lacks PROVINCIA/DISTRITO or a latitude/longitude column.
var ErrInvalidCoordinates = errors.New("dataset: invalid coordinate file")

// ReadDistrictCoordinates parses a coordinate table. Latitude/longitude columns are resolved by name; rows whose
// coordinates do not parse are skipped, and the first row wins for a repeated (province, district).
func ReadDistrictCoordinates(r io.Reader, opts Options) (*DistrictIndex, error) {
	header, rows, err := ReadRecords(r, opts)
	if err != nil {
		return nil, err
	}
	t := NewTable(header, rows)
	for _, c := range []string{ColProvince, ColDistrict} {
		if !t.Has(c) {
			return nil, fmt.Errorf("%w: no %s column", ErrInvalidCoordinates, c)
		}
	}
	lat := columns.Latitude.Resolve(header)
	lon := columns.Longitude.Resolve(header)
	if err := errors.Join(lat.Err(), lon.Err()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCoordinates, err)
	}
	idx := &DistrictIndex{byKey: make(map[DistrictKey]DistrictCoordinate, t.Len())}
	for i := 0; i < t.Len(); i++ {
		p, _ := t.Value(i, ColProvince)
		d, _ := t.Value(i, ColDistrict)
		la, _ := t.Value(i, lat.Column)
		lo, _ := t.Value(i, lon.Column)
		latV, err1 := strconv.ParseFloat(strings.TrimSpace(la), 64)
		lonV, err2 := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err1 != nil || err2 != nil {
			idx.Skipped++
			continue
		}
		if !idx.add(DistrictCoordinate{Province: p, District: d, Lat: latV, Lon: lonV}) {
			idx.Skipped++
		}
	}
	return idx, nil
}

// LoadDistrictCoordinates reads the coordinate file at path. A missing file is the expected "absent" state and
// returns (nil, nil); callers degrade to province-only maps. A file without the region or coordinate columns is
// treated as absent as well.
func LoadDistrictCoordinates(path string, opts Options) (*DistrictIndex, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.L().Info("district_coords_absent", "path", path)
			return nil, nil
		}
		return nil, err
	}
	idx, err := ReadDistrictCoordinates(bytes.NewReader(b), opts)
	if errors.Is(err, ErrInvalidCoordinates) {
		logger.L().Warn("district_coords_invalid", "path", path, "err", err)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	idx.Source = path
	idx.Hash = contentHash(b)
	metrics.DatasetLoadDurationMs.WithLabelValues("district_coords").Observe(float64(time.Since(start).Milliseconds()))
	logger.L().Info("dataset_load_ok", "dataset", "district_coords", "path", path, "rows", idx.Len(), "skipped", idx.Skipped)
	return idx, nil
}
