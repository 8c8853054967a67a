package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadVacanciesNormalizes(t *testing.T) {
	in := "\ufeffPROVINCIA,DISTRITO,NIVEL_EDUCATIVO,TIPO_VACANTE\n" +
		" lima ,miraflores,PRIMARIA,\n" +
		"cañete,NA,nan,ORGANICA\n"
	tb, err := ReadVacancies(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{ColProvince, ColDistrict, "NIVEL_EDUCATIVO", ColVacancyType}, tb.Columns())

	assert.Equal(t, []string{"LIMA", "MIRAFLORES", "PRIMARIA", Sentinel}, tb.Row(0))
	assert.Equal(t, []string{"CAÑETE", Sentinel, Sentinel, "ORGANICA"}, tb.Row(1))
}

func TestReadVacanciesLeavesOtherColumnsCased(t *testing.T) {
	in := "PROVINCIA,DISTRITO,NOMBRE_IE\nLima,Ate, Colegio Uno \n"
	tb, err := ReadVacancies(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	v, _ := tb.Value(0, "NOMBRE_IE")
	assert.Equal(t, " Colegio Uno ", v)
}

func TestReadVacanciesBlankCellsBecomeSentinel(t *testing.T) {
	in := "PROVINCIA,DISTRITO,NOMBRE_IE\n   ,  ,X\n\t, nan ,   \n"
	tb, err := ReadVacancies(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, []string{Sentinel, Sentinel, "X"}, tb.Row(0))
	assert.Equal(t, []string{Sentinel, Sentinel, Sentinel}, tb.Row(1))
	tb.Each(func(i int, row []string) {
		for _, v := range row {
			assert.NotEmpty(t, strings.TrimSpace(v))
		}
	})
}

func TestNormalizeRegion(t *testing.T) {
	assert.Equal(t, "LIMA", NormalizeRegion(" lima "))
	assert.Equal(t, Sentinel, NormalizeRegion("   "))
	assert.Equal(t, Sentinel, NormalizeRegion(" nan "))
	assert.Equal(t, "ÁNCASH", NormalizeRegion("áncash"))
}

func TestReadVacanciesWindows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("PROVINCIA;DISTRITO;CÓDIGO DE PLAZA\nhuánuco;amarilis;X1\n")
	require.NoError(t, err)
	tb, err := ReadVacancies(bytes.NewReader([]byte(raw)), Options{Delimiter: ';', Encoding: "cp1252"})
	require.NoError(t, err)
	assert.True(t, tb.Has(ColCode))
	assert.Equal(t, []string{"HUÁNUCO", "AMARILIS", "X1"}, tb.Row(0))
}

func TestReadVacanciesErrors(t *testing.T) {
	_, err := ReadVacancies(strings.NewReader(""), DefaultOptions())
	assert.Error(t, err)

	_, err = ReadVacancies(strings.NewReader("A\n1\n"), Options{Encoding: "ebcdic"})
	assert.Error(t, err)
}

func TestLoadVacancies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plazas.csv")
	require.NoError(t, os.WriteFile(path, []byte("PROVINCIA,DISTRITO\nLIMA,ATE\n"), 0o644))

	tb, err := LoadVacancies(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, tb.Len())
	assert.Equal(t, path, tb.Source)
	assert.Len(t, tb.Hash, 64)

	_, err = LoadVacancies(filepath.Join(dir, "missing.csv"), DefaultOptions())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("CSV_DELIMITER", "tab")
	t.Setenv("CSV_ENCODING", "latin1")
	o := OptionsFromEnv()
	assert.Equal(t, '\t', o.Delimiter)
	assert.Equal(t, "latin1", o.Encoding)

	t.Setenv("CSV_DELIMITER", ";;")
	assert.Equal(t, ',', OptionsFromEnv().Delimiter)
}
