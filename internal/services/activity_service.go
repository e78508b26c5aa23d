package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotrip/internal/models/db_models"
	"ecotrip/internal/models/request_models"
	"ecotrip/internal/models/response_models"
	"ecotrip/internal/repositories"
	"ecotrip/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, req request_models.ActivityRequest) (response_models.ActivityResponse, error)
	GetActivity(ctx context.Context, id uint) (response_models.ActivityResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (s *ActivityService) CreateActivity(ctx context.Context, req request_models.ActivityRequest) (response_models.ActivityResponse, error) {
	activity := &db_models.Activity{
		Name:           stringValue(req.Name),
		Type:           stringValue(req.Type),
		PriceEstimated: req.PriceEstimated,
		DestinationID:  req.DestinationID,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		// The store owns referential integrity.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return response_models.ActivityResponse{}, utils.ErrInvalidDestinationReference
		}
		s.logger.Error("failed to create activity", zap.Error(err))
		return response_models.ActivityResponse{}, utils.ErrDatabaseError
	}

	return toActivityResponse(activity), nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id uint) (response_models.ActivityResponse, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch activity", zap.Uint("activity_id", id), zap.Error(err))
		return response_models.ActivityResponse{}, utils.ErrDatabaseError
	}
	if activity == nil {
		return response_models.ActivityResponse{}, utils.ErrActivityNotFound
	}
	return toActivityResponse(activity), nil
}
