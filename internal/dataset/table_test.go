package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return NewTable(
		[]string{ColProvince, ColDistrict, "NIVEL_EDUCATIVO"},
		[][]string{
			{"LIMA", "MIRAFLORES", "PRIMARIA"},
			{"LIMA", "ATE", "SECUNDARIA"},
			{"CUSCO", "WANCHAQ", "PRIMARIA"},
			{"LIMA", "ATE"},
		},
	)
}

func TestNewTablePadsShortRows(t *testing.T) {
	tb := sampleTable()
	v, ok := tb.Value(3, "NIVEL_EDUCATIVO")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Len(t, tb.Row(3), 3)
}

func TestWhereInAndDistinct(t *testing.T) {
	tb := sampleTable()
	lima := tb.WhereIn(ColProvince, []string{"LIMA"})
	assert.Equal(t, 3, lima.Len())
	assert.Equal(t, []string{"ATE", "MIRAFLORES"}, lima.Distinct(ColDistrict))

	assert.Same(t, tb, tb.WhereIn(ColProvince, nil))
	assert.Equal(t, 0, tb.WhereIn(ColProvince, []string{"PIURA"}).Len())
	assert.Equal(t, 0, tb.WhereIn("NOPE", []string{"LIMA"}).Len())
	assert.Equal(t, []string{}, tb.Distinct("NOPE"))
}

func TestProject(t *testing.T) {
	tb := sampleTable()
	p, err := tb.Project([]string{ColDistrict, ColProvince})
	require.NoError(t, err)
	assert.Equal(t, []string{ColDistrict, ColProvince}, p.Columns())
	assert.Equal(t, []string{"MIRAFLORES", "LIMA"}, p.Row(0))

	_, err = tb.Project([]string{"NOPE"})
	assert.Error(t, err)
}

func TestDuplicateColumnFirstWins(t *testing.T) {
	tb := NewTable([]string{"A", "A"}, [][]string{{"1", "2"}})
	v, _ := tb.Value(0, "A")
	assert.Equal(t, "1", v)
}

func TestTableJSON(t *testing.T) {
	tb := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})
	b, err := json.Marshal(tb)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["A","B"],"rows":[["1","2"]]}`, string(b))

	var back Table
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tb.Columns(), back.Columns())
	assert.Equal(t, 1, back.Len())
}
