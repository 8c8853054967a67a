// Package summary holds the count-and-rank aggregations shown next to the map.
package summary

import (
	"sort"

	"plazas-monitor/internal/dataset"
)

// DefaultN is the ranking length used for institutions and districts.
const DefaultN = 15

// Count is one ranked value.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TopN counts the distinct values of column in view and returns the n most frequent, count descending.
// Equal counts keep the order in which the values first appear in view. n <= 0 or an empty view yields an empty
// slice; an unknown column is an error.
func TopN(view *dataset.Table, column string, n int) ([]Count, error) {
	vals, err := view.Values(column)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Count{}, nil
	}
	idx := make(map[string]int)
	counts := make([]Count, 0)
	for _, v := range vals {
		k, ok := idx[v]
		if !ok {
			k = len(counts)
			idx[v] = k
			counts = append(counts, Count{Value: v})
		}
		counts[k].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}
