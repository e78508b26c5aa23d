package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecotrip/internal/models/db_models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *db_models.Activity) error
	GetByID(ctx context.Context, id uint) (*db_models.Activity, error)
	ListByDestination(ctx context.Context, destinationID uint) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id uint) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListByDestination(ctx context.Context, destinationID uint) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
