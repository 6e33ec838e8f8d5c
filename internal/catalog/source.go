package catalog

import (
	"context"
	"errors"
	"sort"

	"trippin/internal/itinerary"
	"trippin/pkg/utils"
)

var ErrLocationNotFound = errors.New("location not found")

// Source is one place-data backend. Lookup returns ErrLocationNotFound when
// the source has nothing for the location; any other error is a failure of
// the source itself.
type Source interface {
	Name() string
	Lookup(ctx context.Context, location string) (itinerary.Catalog, error)
}

// Lister is implemented by sources that know their destinations upfront.
type Lister interface {
	Locations(ctx context.Context) ([]string, error)
}

// StaticSource serves an in-memory set of destinations.
type StaticSource struct {
	destinations []Destination
}

func NewStaticSource(destinations []Destination) *StaticSource {
	return &StaticSource{destinations: destinations}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Lookup(_ context.Context, location string) (itinerary.Catalog, error) {
	key := utils.NormalizeLocation(location)
	for _, d := range s.destinations {
		if d.Matches(key) {
			return d.Catalog, nil
		}
	}
	return nil, ErrLocationNotFound
}

func (s *StaticSource) Locations(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.destinations))
	for _, d := range s.destinations {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names, nil
}
