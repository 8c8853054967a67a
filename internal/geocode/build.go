package geocode

import (
	"context"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
)

// Searcher is the lookup used by BuildDistricts; *Nominatim satisfies it.
type Searcher interface {
	Search(ctx context.Context, q string) (Result, error)
}

// BuildStats summarizes one BuildDistricts run.
type BuildStats struct {
	Kept     int
	Resolved int
	NotFound int
	Failed   int
	Skipped  int
}

// BuildDistricts returns the coordinate rows for pairs: rows already in existing are kept as they are, the rest are
// looked up one by one. At most limit lookups run (limit <= 0 means no limit); pairs beyond it, and pairs whose
// province or district is the missing-value sentinel, are left out. A cancelled ctx stops early and returns what was
// built so far with ctx's error.
func BuildDistricts(ctx context.Context, pairs []dataset.DistrictKey, existing *dataset.DistrictIndex, s Searcher, limit int) ([]dataset.DistrictCoordinate, BuildStats, error) {
	var st BuildStats
	out := existing.Coordinates()
	st.Kept = len(out)
	lookups := 0
	for _, p := range pairs {
		if p.Province == dataset.Sentinel || p.District == dataset.Sentinel {
			st.Skipped++
			continue
		}
		if _, ok := existing.Lookup(p.Province, p.District); ok {
			continue
		}
		if limit > 0 && lookups >= limit {
			st.Skipped++
			continue
		}
		lookups++
		res, err := s.Search(ctx, DistrictQuery(p.Province, p.District))
		if err != nil {
			if ctx.Err() != nil {
				return out, st, ctx.Err()
			}
			st.Failed++
			logger.L().Warn("geocode_error", "province", p.Province, "district", p.District, "err", err)
			continue
		}
		if !res.Found {
			st.NotFound++
			logger.L().Debug("geocode_not_found", "province", p.Province, "district", p.District)
			continue
		}
		st.Resolved++
		out = append(out, dataset.DistrictCoordinate{Province: p.Province, District: p.District, Lat: res.Lat, Lon: res.Lon})
	}
	return out, st, nil
}
