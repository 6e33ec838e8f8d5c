package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trippin/internal/models/db_models"
	"trippin/pkg/utils"
)

type DestinationRepository interface {
	// GetBySlug returns nil, nil when no destination has the slug.
	GetBySlug(ctx context.Context, slug string) (*db_models.Destination, error)
	// FindByAlias returns nil, nil when no destination lists the alias.
	FindByAlias(ctx context.Context, alias string) (*db_models.Destination, error)
	List(ctx context.Context) ([]db_models.Destination, error)
	Create(ctx context.Context, destination *db_models.Destination) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func orderedPlaces(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *destinationRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Places", orderedPlaces).
		First(&destination, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

// FindByAlias scans aliases in memory; the destination table is small and
// the comparison needs the normalized form.
func (r *destinationRepository) FindByAlias(ctx context.Context, alias string) (*db_models.Destination, error) {
	var destinations []db_models.Destination
	if err := r.db.WithContext(ctx).
		Where("aliases IS NOT NULL").
		Find(&destinations).Error; err != nil {
		return nil, err
	}

	for _, d := range destinations {
		for _, a := range d.Aliases {
			if utils.NormalizeLocation(a) == alias {
				return r.GetBySlug(ctx, d.Slug)
			}
		}
	}
	return nil, nil
}

func (r *destinationRepository) List(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(destination).Error
	})
}

func (r *destinationRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
