package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDistrictCoordinates(t *testing.T) {
	in := "PROVINCIA,DISTRITO,LAT_DIST,LON_DIST\n" +
		"lima,ate,-12.02,-76.92\n" +
		"LIMA,ATE,0,0\n" +
		"CUSCO,WANCHAQ,,\n" +
		"CUSCO,SANTIAGO,-13.53,-71.98\n"
	idx, err := ReadDistrictCoordinates(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 2, idx.Skipped)

	c, ok := idx.Lookup("LIMA", "ATE")
	require.True(t, ok)
	assert.InDelta(t, -12.02, c.Lat, 1e-9)
	assert.InDelta(t, -76.92, c.Lon, 1e-9)

	_, ok = idx.Lookup("CUSCO", "WANCHAQ")
	assert.False(t, ok)

	coords := idx.Coordinates()
	require.Len(t, coords, 2)
	assert.Equal(t, "ATE", coords[0].District)
	assert.Equal(t, "SANTIAGO", coords[1].District)
}

func TestReadDistrictCoordinatesFallbackColumns(t *testing.T) {
	in := "PROVINCIA,DISTRITO,LATITUD,LONGITUD\nLIMA,ATE,-12,-76\n"
	idx, err := ReadDistrictCoordinates(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	_, ok := idx.Lookup("LIMA", "ATE")
	assert.True(t, ok)
}

func TestReadDistrictCoordinatesMissingColumns(t *testing.T) {
	_, err := ReadDistrictCoordinates(strings.NewReader("PROVINCIA,DISTRITO\nLIMA,ATE\n"), DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = ReadDistrictCoordinates(strings.NewReader("DISTRITO,LAT,LON\nATE,1,2\n"), DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestLoadDistrictCoordinatesInvalidIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.csv")
	require.NoError(t, os.WriteFile(path, []byte("PROVINCIA,DISTRITO\nLIMA,ATE\n"), 0o644))
	idx, err := LoadDistrictCoordinates(path, DefaultOptions())
	assert.NoError(t, err)
	assert.Nil(t, idx)
}

func TestLoadDistrictCoordinatesAbsent(t *testing.T) {
	idx, err := LoadDistrictCoordinates(filepath.Join(t.TempDir(), "coords.csv"), DefaultOptions())
	assert.NoError(t, err)
	assert.Nil(t, idx)
	assert.Equal(t, 0, idx.Len())
	_, ok := idx.Lookup("LIMA", "ATE")
	assert.False(t, ok)
}

func TestLoadDistrictCoordinates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.csv")
	require.NoError(t, os.WriteFile(path, []byte("PROVINCIA,DISTRITO,LAT_DIST,LON_DIST\nLIMA,ATE,-12,-76\n"), 0o644))
	idx, err := LoadDistrictCoordinates(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, path, idx.Source)
}

func TestNewDistrictIndexNormalizesKeys(t *testing.T) {
	idx := NewDistrictIndex([]DistrictCoordinate{
		{Province: " cañete ", District: "asia", Lat: 1, Lon: 2},
		{Province: "CAÑETE", District: "ASIA", Lat: 3, Lon: 4},
	})
	assert.Equal(t, 1, idx.Len())
	c, ok := idx.Lookup("CAÑETE", "ASIA")
	require.True(t, ok)
	assert.Equal(t, 1.0, c.Lat)
}
