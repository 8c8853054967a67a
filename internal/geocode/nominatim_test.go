package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "pe", q.Get("countrycodes"))
		assert.Equal(t, "json", q.Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		if q.Get("q") == "ATE, LIMA, Peru" {
			_, _ = w.Write([]byte(`[{"lat":"-12.0258","lon":"-76.9214","display_name":"Ate, Lima"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	n := New(WithBaseURL(srv.URL), WithMinInterval(0))
	res, err := n.Search(context.Background(), DistrictQuery("LIMA", "ATE"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.InDelta(t, -12.0258, res.Lat, 1e-9)
	assert.InDelta(t, -76.9214, res.Lon, 1e-9)
	assert.Equal(t, "Ate, Lima", res.Name)

	res, err = n.Search(context.Background(), DistrictQuery("LIMA", "NOWHERE"))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "bad" {
			_, _ = w.Write([]byte(`[{"lat":"x","lon":"1"}]`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := New(WithBaseURL(srv.URL), WithMinInterval(0))
	_, err := n.Search(context.Background(), "anything")
	assert.Error(t, err)
	_, err = n.Search(context.Background(), "bad")
	assert.Error(t, err)

	res, err := n.Search(context.Background(), "  ")
	assert.NoError(t, err)
	assert.False(t, res.Found)
}

func TestWaitHonoursContext(t *testing.T) {
	n := New(WithMinInterval(time.Hour))
	require.NoError(t, n.wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.wait(ctx), context.DeadlineExceeded)
}
