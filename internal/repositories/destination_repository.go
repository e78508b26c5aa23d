package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecotrip/internal/models/db_models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) error
	GetByID(ctx context.Context, id uint) (*db_models.Destination, error)
	// List returns every destination ordered by id, or only those whose
	// country matches exactly when country is not empty.
	List(ctx context.Context, country string) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) GetByID(ctx context.Context, id uint) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, country string) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	query := r.db.WithContext(ctx).Order("id")
	if country != "" {
		query = query.Where("country = ?", country)
	}
	if err := query.Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}
