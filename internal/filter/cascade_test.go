package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plazas-monitor/internal/columns"
	"plazas-monitor/internal/dataset"
)

func vacancies() *dataset.Table {
	return dataset.NewTable(
		[]string{dataset.ColProvince, dataset.ColDistrict, "NIVEL_EDUCATIVO", dataset.ColVacancyType},
		[][]string{
			{"LIMA", "MIRAFLORES", "PRIMARIA", "ORGANICA"},
			{"LIMA", "ATE", "SECUNDARIA", "EVENTUAL"},
			{"LIMA", "ATE", "PRIMARIA", "ORGANICA"},
			{"CUSCO", "WANCHAQ", "PRIMARIA", "EVENTUAL"},
			{"CUSCO", "SANTIAGO", "INICIAL", "ORGANICA"},
			{"PIURA", "CASTILLA", "SECUNDARIA", "ORGANICA"},
		},
	)
}

func newCascade(tb *dataset.Table) *Cascade {
	return New(tb, columns.Level.Resolve(tb.Columns()))
}

func rowsOf(tb *dataset.Table) [][]string {
	out := make([][]string, 0, tb.Len())
	tb.Each(func(_ int, r []string) { out = append(out, append([]string(nil), r...)) })
	return out
}

func TestApplyRunsStagesInOrder(t *testing.T) {
	c := newCascade(vacancies())
	view := c.Apply(Selection{Provinces: []string{"LIMA"}, Levels: []string{"PRIMARIA"}})
	assert.Equal(t, 2, view.Len())

	view = c.Apply(Selection{Provinces: []string{"LIMA"}, Districts: []string{"ATE"}, VacancyTypes: []string{"EVENTUAL"}})
	require.Equal(t, 1, view.Len())
	v, _ := view.Value(0, "NIVEL_EDUCATIVO")
	assert.Equal(t, "SECUNDARIA", v)

	assert.Equal(t, 6, c.Apply(Selection{}).Len())
}

func TestApplyDoesNotModifyBase(t *testing.T) {
	base := vacancies()
	c := newCascade(base)
	_ = c.Apply(Selection{Provinces: []string{"CUSCO"}})
	assert.Equal(t, 6, base.Len())
}

func TestApplyIsIdempotent(t *testing.T) {
	base := vacancies()
	sel := Selection{Provinces: []string{"LIMA", "CUSCO"}, Levels: []string{"PRIMARIA"}}
	once := newCascade(base).Apply(sel)
	twice := newCascade(once).Apply(sel)
	assert.Equal(t, rowsOf(once), rowsOf(twice))
}

func TestApplyOrderIndependentAcrossColumns(t *testing.T) {
	base := vacancies()
	a := base.WhereIn(dataset.ColProvince, []string{"LIMA", "PIURA"}).WhereIn("NIVEL_EDUCATIVO", []string{"SECUNDARIA"})
	b := base.WhereIn("NIVEL_EDUCATIVO", []string{"SECUNDARIA"}).WhereIn(dataset.ColProvince, []string{"LIMA", "PIURA"})
	assert.Equal(t, rowsOf(a), rowsOf(b))
	assert.Equal(t, rowsOf(a), rowsOf(newCascade(base).Apply(Selection{Provinces: []string{"PIURA", "LIMA"}, Levels: []string{"SECUNDARIA"}})))
}

func TestDistrictCandidatesFollowProvinceSelection(t *testing.T) {
	c := newCascade(vacancies())
	o := c.Options(Selection{Provinces: []string{"LIMA"}})
	assert.Equal(t, []string{"ATE", "MIRAFLORES"}, o.Districts)
	assert.Equal(t, []string{"CUSCO", "LIMA", "PIURA"}, o.Provinces)

	all := c.Options(Selection{})
	assert.Equal(t, []string{"ATE", "CASTILLA", "MIRAFLORES", "SANTIAGO", "WANCHAQ"}, all.Districts)
}

func TestOtherCandidatesDoNotDependOnSelection(t *testing.T) {
	c := newCascade(vacancies())
	o := c.Options(Selection{Provinces: []string{"PIURA"}, Levels: []string{"SECUNDARIA"}})
	assert.True(t, o.LevelEnabled)
	assert.Equal(t, []string{"INICIAL", "PRIMARIA", "SECUNDARIA"}, o.Levels)
	assert.True(t, o.VacancyTypeEnabled)
	assert.Equal(t, []string{"EVENTUAL", "ORGANICA"}, o.VacancyTypes)
}

func TestVacancyTypeStageSkippedWhenColumnAbsent(t *testing.T) {
	tb := dataset.NewTable(
		[]string{dataset.ColProvince, dataset.ColDistrict},
		[][]string{{"LIMA", "ATE"}, {"CUSCO", "WANCHAQ"}},
	)
	c := newCascade(tb)
	for _, st := range c.Stages() {
		assert.NotEqual(t, "vacancy_type", st.Name)
		assert.NotEqual(t, "level", st.Name)
	}
	assert.Len(t, c.Stages(), 2)

	o := c.Options(Selection{})
	assert.False(t, o.VacancyTypeEnabled)
	assert.Nil(t, o.VacancyTypes)
	assert.False(t, o.LevelEnabled)
	assert.Nil(t, o.Levels)

	assert.Equal(t, 2, c.Apply(Selection{VacancyTypes: []string{"ORGANICA"}, Levels: []string{"PRIMARIA"}}).Len())
}

func TestEmptyResultKeepsColumns(t *testing.T) {
	c := newCascade(vacancies())
	view := c.Apply(Selection{Provinces: []string{"LIMA"}, Districts: []string{"WANCHAQ"}})
	assert.Equal(t, 0, view.Len())
	assert.Equal(t, vacancies().Columns(), view.Columns())
}

func TestSelectionCanonical(t *testing.T) {
	s := Selection{Provinces: []string{"LIMA", "CUSCO", "LIMA"}, Levels: []string{}}.Canonical()
	assert.Equal(t, []string{"CUSCO", "LIMA"}, s.Provinces)
	assert.Nil(t, s.Levels)
	assert.Nil(t, s.Districts)
}
