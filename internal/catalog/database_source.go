package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trippin/internal/itinerary"
	"trippin/internal/models/db_models"
	"trippin/internal/repositories"
	"trippin/pkg/utils"
)

// DatabaseSource serves destinations stored through gorm.
type DatabaseSource struct {
	repo repositories.DestinationRepository
}

func NewDatabaseSource(repo repositories.DestinationRepository) *DatabaseSource {
	return &DatabaseSource{repo: repo}
}

func (s *DatabaseSource) Name() string { return "database" }

func (s *DatabaseSource) Lookup(ctx context.Context, location string) (itinerary.Catalog, error) {
	key := utils.NormalizeLocation(location)

	destination, err := s.repo.GetBySlug(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get destination %q: %w", key, err)
	}
	if destination == nil {
		destination, err = s.repo.FindByAlias(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("find destination alias %q: %w", key, err)
		}
	}
	if destination == nil {
		return nil, ErrLocationNotFound
	}

	catalog := make(itinerary.Catalog, len(itinerary.Categories))
	for _, p := range destination.Places {
		category, ok := itinerary.ParseCategory(p.Category)
		if !ok {
			continue
		}
		catalog[category] = append(catalog[category], itinerary.Place{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return catalog, nil
}

func (s *DatabaseSource) Locations(ctx context.Context) ([]string, error) {
	destinations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, d.Name)
	}
	return names, nil
}

// Seed stores every destination the repository does not have yet.
func Seed(ctx context.Context, repo repositories.DestinationRepository, destinations []Destination, logger *zap.Logger) error {
	for _, d := range destinations {
		exists, err := repo.ExistsBySlug(ctx, d.Key())
		if err != nil {
			return fmt.Errorf("check destination %q: %w", d.Name, err)
		}
		if exists {
			continue
		}

		if err := repo.Create(ctx, toModel(d)); err != nil {
			return fmt.Errorf("seed destination %q: %w", d.Name, err)
		}
		logger.Info("seeded destination",
			zap.String("destination", d.Name),
			zap.Int("places", d.Catalog.Size()))
	}
	return nil
}

func toModel(d Destination) *db_models.Destination {
	model := &db_models.Destination{
		Name:    d.Name,
		Slug:    d.Key(),
		Aliases: d.Aliases,
	}

	position := 0
	for _, category := range itinerary.Categories {
		for _, p := range d.Catalog[category] {
			model.Places = append(model.Places, db_models.Place{
				Category:    string(category),
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Position:    position,
			})
			position++
		}
	}
	return model
}
