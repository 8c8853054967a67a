// Package dataset holds the in-memory vacancy table and the district coordinate index, and loads both from
// delimited files. Tables are immutable after load: every filter or projection returns a new Table that shares
// row storage with its parent.
package dataset

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	ColProvince    = "PROVINCIA"
	ColDistrict    = "DISTRITO"
	ColVacancyType = "TIPO_VACANTE"
	ColReason      = "MOTIVO DE LA VACANCIA"
	ColCode        = "CÓDIGO DE PLAZA"
)

// Sentinel replaces every missing cell at load time. It is a regular, countable value downstream.
const Sentinel = "SIN INFORMACIÓN"

// Table is an ordered set of named string columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string

	// Source is the file path or database table the data came from.
	Source string
	// Hash is the hex SHA-256 of the source content, empty for derived views.
	Hash string
}

// NewTable wraps columns and rows as-is. Rows shorter than the header are padded with empty cells.
// Duplicate column names keep the first position for lookups.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, c := range t.columns {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	for _, r := range rows {
		if len(r) < len(t.columns) {
			padded := make([]string, len(t.columns))
			copy(padded, r)
			r = padded
		}
		t.rows = append(t.rows, r)
	}
	return t
}

func (t *Table) derive(rows [][]string) *Table {
	return &Table{columns: t.columns, index: t.index, rows: rows, Source: t.Source}
}

// Columns returns a copy of the column names in file order.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Value returns the cell at row i for col.
func (t *Table) Value(i int, col string) (string, bool) {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}
	return t.rows[i][j], true
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i][:len(t.columns)]...)
}

// Values returns the column's cells in row order.
func (t *Table) Values(col string) ([]string, error) {
	j, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("dataset: unknown column %q", col)
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}
	return out, nil
}

// Where keeps the rows whose col value satisfies keep. An unknown column yields an empty view.
func (t *Table) Where(col string, keep func(string) bool) *Table {
	j, ok := t.index[col]
	if !ok {
		return t.derive([][]string{})
	}
	out := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r[j]) {
			out = append(out, r)
		}
	}
	return t.derive(out)
}

// WhereIn keeps the rows whose col value is one of values. An empty values list means no restriction.
func (t *Table) WhereIn(col string, values []string) *Table {
	if len(values) == 0 {
		return t
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return t.Where(col, func(v string) bool {
		_, ok := set[v]
		return ok
	})
}

// Distinct returns the sorted, deduplicated values of col. Unknown columns return an empty list.
func (t *Table) Distinct(col string) []string {
	vals, err := t.Values(col)
	if err != nil {
		return []string{}
	}
	slices.Sort(vals)
	return slices.Compact(vals)
}

// Project returns a view restricted to cols, in that order.
func (t *Table) Project(cols []string) (*Table, error) {
	idx := make([]int, len(cols))
	for k, c := range cols {
		j, ok := t.index[c]
		if !ok {
			return nil, fmt.Errorf("dataset: unknown column %q", c)
		}
		idx[k] = j
	}
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		nr := make([]string, len(idx))
		for k, j := range idx {
			nr[k] = r[j]
		}
		rows[i] = nr
	}
	p := NewTable(cols, rows)
	p.Source = t.Source
	return p, nil
}

// Each calls fn for every row; the slice must not be modified or retained.
func (t *Table) Each(fn func(i int, row []string)) {
	for i, r := range t.rows {
		fn(i, r[:len(t.columns)])
	}
}

type tableJSON struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r[:len(t.columns)]
	}
	return json.Marshal(tableJSON{Columns: t.columns, Rows: rows})
}

func (t *Table) UnmarshalJSON(b []byte) error {
	var raw tableJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = *NewTable(raw.Columns, raw.Rows)
	return nil
}
