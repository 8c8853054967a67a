package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/geo"
)

func detail() *dataset.Table {
	return dataset.NewTable(
		[]string{"NOMBRE_IE", dataset.ColProvince, dataset.ColCode},
		[][]string{
			{"IE; UNO", "LIMA", "P1"},
			{"IE DOS", "CAÑETE", "P2"},
		},
	)
}

func TestWriteDetailCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailCSV(&buf, detail()))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"))
	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\r\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NOMBRE_IE;PROVINCIA;CÓDIGO DE PLAZA", lines[0])
	assert.Equal(t, `"IE; UNO";LIMA;P1`, lines[1])
	assert.Equal(t, "IE DOS;CAÑETE;P2", lines[2])
	assert.Equal(t, "", lines[3])
}

func TestWriteDetailXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDetailXLSX(&buf, detail()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{DetailSheet}, f.GetSheetList())
	rows, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"NOMBRE_IE", "PROVINCIA", "CÓDIGO DE PLAZA"}, rows[0])
	assert.Equal(t, []string{"IE DOS", "CAÑETE", "P2"}, rows[2])
}

func TestWriteDetailEmpty(t *testing.T) {
	empty := dataset.NewTable([]string{"A"}, nil)
	var buf bytes.Buffer
	require.NoError(t, WriteDetailCSV(&buf, empty))
	assert.Equal(t, "\ufeffA\r\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDetailXLSX(&buf, empty))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(DetailSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWritePointsCSV(t *testing.T) {
	var buf bytes.Buffer
	pts := []geo.Point{{Province: "LIMA", District: "ATE", Count: 3, Lat: -12.5, Lon: -76.25}}
	require.NoError(t, WritePointsCSV(&buf, pts))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "province,district,count,lat,lon", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "LIMA,ATE,3,"))

	buf.Reset()
	require.NoError(t, WritePointsCSV(&buf, nil))
	assert.Equal(t, "province,district,count,lat,lon", strings.TrimSpace(buf.String()))
}
