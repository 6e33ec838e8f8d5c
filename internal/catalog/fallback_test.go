package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trippin/internal/itinerary"
)

func TestFallbackCatalogEmbedsLocation(t *testing.T) {
	catalog := FallbackCatalog("Atlantis")

	require.Len(t, catalog, 4)
	for _, c := range itinerary.Categories {
		assert.NotEmpty(t, catalog[c], c)
	}

	assert.Equal(t, "Atlantis History Museum", catalog[itinerary.Historical][0].Name)
	assert.Equal(t, "Atlantis Art Gallery", catalog[itinerary.Historical][1].Name)
	assert.Equal(t, "Atlantis Viewpoint", catalog[itinerary.Scenic][0].Name)

	embedded := 0
	for _, places := range catalog {
		for _, p := range places {
			if strings.Contains(p.Name, "Atlantis") {
				embedded++
			}
		}
	}
	assert.Equal(t, 3, embedded)
}

func TestFallbackCatalogIsPure(t *testing.T) {
	assert.Equal(t, FallbackCatalog("Oz"), FallbackCatalog("Oz"))
}

func TestStaticSourceLookup(t *testing.T) {
	src := NewStaticSource(BuiltinDestinations())
	ctx := context.Background()

	for _, location := range []string{"paris", "Paris", " PARIS ", "Tokyo", "New York", "newyork", "NYC", "new york city"} {
		catalog, err := src.Lookup(ctx, location)
		require.NoError(t, err, location)
		assert.Equal(t, 20, catalog.Size(), location)
	}

	_, err := src.Lookup(ctx, "Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestStaticSourceLocations(t *testing.T) {
	names, err := NewStaticSource(BuiltinDestinations()).Locations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"New York", "Paris", "Tokyo"}, names)
}
