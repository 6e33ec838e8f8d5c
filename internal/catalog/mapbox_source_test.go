package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trippin/internal/itinerary"
)

func mapboxServer(t *testing.T, geocode string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("access_token"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/search/geocode/v6/forward":
			fmt.Fprint(w, geocode)
		case strings.HasPrefix(r.URL.Path, "/search/searchbox/v1/category/"):
			assert.Equal(t, "2.352200,48.856600", r.URL.Query().Get("proximity"))
			category := strings.TrimPrefix(r.URL.Path, "/search/searchbox/v1/category/")
			fmt.Fprintf(w, `{"features":[
				{"properties":{"name":"%s one","full_address":"1 Rue A"}},
				{"properties":{"name":"","full_address":"nameless"}},
				{"properties":{"name":"%s two","place_formatted":"Paris, France"}}
			]}`, category, category)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

const parisGeocode = `{"features":[{"geometry":{"coordinates":[2.3522,48.8566]},"properties":{"name":"Paris"}}]}`

func TestMapboxSourceLookup(t *testing.T) {
	srv := mapboxServer(t, parisGeocode)
	src := NewMapboxSource(MapboxConfig{AccessToken: "secret", BaseURL: srv.URL, RatePerSecond: 100}, zap.NewNop())

	catalog, err := src.Lookup(context.Background(), "Paris")
	require.NoError(t, err)

	require.Len(t, catalog[itinerary.Historical], 2)
	assert.Equal(t, "museum one", catalog[itinerary.Historical][0].Name)
	assert.Equal(t, "1 Rue A", catalog[itinerary.Historical][0].Description)
	assert.Equal(t, "Paris, France", catalog[itinerary.Historical][1].Description)
	assert.Equal(t, "15", catalog[itinerary.Historical][0].Price.String())

	assert.Equal(t, "restaurant one", catalog[itinerary.Food][0].Name)
	assert.True(t, catalog[itinerary.Scenic][0].Price.IsZero())
	assert.Equal(t, "bar two", catalog[itinerary.Nightlife][1].Name)
}

func TestMapboxSourceUnknownLocation(t *testing.T) {
	srv := mapboxServer(t, `{"features":[]}`)
	src := NewMapboxSource(MapboxConfig{AccessToken: "secret", BaseURL: srv.URL, RatePerSecond: 100}, zap.NewNop())

	_, err := src.Lookup(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestMapboxSourceBreakerOpensAfterFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	src := NewMapboxSource(MapboxConfig{AccessToken: "secret", BaseURL: srv.URL, RatePerSecond: 100}, zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := src.Lookup(context.Background(), "Paris")
		assert.Error(t, err)
	}

	assert.EqualValues(t, 3, hits.Load())
}
