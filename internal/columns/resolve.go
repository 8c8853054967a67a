// Package columns resolves logical fields (institution name, education level, coordinates) to the concrete
// column names of a loaded table. Input files name these columns inconsistently, so each field carries an
// ordered list of rules; the first rule (by priority) that matches any column wins, scanning columns in order.
package columns

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotResolved is returned by Result.Err when no rule matched.
var ErrNotResolved = errors.New("column not resolved")

// Rule is one (priority, predicate) pair. Lower Priority is evaluated first.
type Rule struct {
	Priority int
	Desc     string
	Match    func(column string) bool
}

// Exact matches a column name verbatim.
func Exact(priority int, name string) Rule {
	return Rule{
		Priority: priority,
		Desc:     "exact:" + name,
		Match:    func(c string) bool { return c == name },
	}
}

// Containing matches a column whose accent-folded name contains any of subs.
// Matching stays case-sensitive.
func Containing(priority int, subs ...string) Rule {
	return Rule{
		Priority: priority,
		Desc:     "contains:" + strings.Join(subs, "|"),
		Match: func(c string) bool {
			folded := Fold(c)
			for _, s := range subs {
				if strings.Contains(c, s) || strings.Contains(folded, s) {
					return true
				}
			}
			return false
		},
	}
}

// Fold strips combining marks (Á -> A, Ñ -> N) without touching case.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Resolver holds the rules for one logical field.
type Resolver struct {
	Field string
	rules []Rule
}

func NewResolver(field string, rules ...Rule) *Resolver {
	rs := append([]Rule(nil), rules...)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Priority < rs[j].Priority })
	return &Resolver{Field: field, rules: rs}
}

// Result is the outcome of a resolution. Resolved=false is an ordinary value, not a failure.
type Result struct {
	Field    string `json:"field"`
	Column   string `json:"column,omitempty"`
	Rule     string `json:"rule,omitempty"`
	Resolved bool   `json:"resolved"`
}

// Err returns nil for a resolved result, otherwise an error wrapping ErrNotResolved.
func (r Result) Err() error {
	if r.Resolved {
		return nil
	}
	return fmt.Errorf("%s: %w", r.Field, ErrNotResolved)
}

// Resolve evaluates rules in priority order; within a rule the first matching column (in column order) wins.
func (r *Resolver) Resolve(cols []string) Result {
	for _, rule := range r.rules {
		for _, c := range cols {
			if rule.Match(c) {
				return Result{Field: r.Field, Column: c, Rule: rule.Desc, Resolved: true}
			}
		}
	}
	return Result{Field: r.Field}
}

var (
	Institution = NewResolver("institution",
		Exact(0, "NOMBRE_IE"),
		Containing(1, "NOMBRE", "INSTITUCION", "I.E."),
	)
	Level = NewResolver("level",
		Exact(0, "NIVEL_EDUCATIVO"),
		Containing(1, "NIVEL"),
	)
	Latitude = NewResolver("latitude",
		Exact(0, "LAT_DIST"),
		Containing(1, "LAT"),
	)
	Longitude = NewResolver("longitude",
		Exact(0, "LON_DIST"),
		Containing(1, "LON"),
	)
)
