package services

import (
	"context"

	"go.uber.org/zap"

	"ecotrip/internal/models/db_models"
	"ecotrip/internal/models/request_models"
	"ecotrip/internal/models/response_models"
	"ecotrip/internal/repositories"
	"ecotrip/pkg/utils"
)

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (response_models.DestinationResponse, error)
	GetDestination(ctx context.Context, id uint) (response_models.DestinationResponse, error)
	ListDestinations(ctx context.Context, country string) ([]response_models.DestinationResponse, error)
	ListDestinationActivities(ctx context.Context, id uint) ([]response_models.ActivityResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	activityRepo    repositories.ActivityRepository
	logger          *zap.Logger
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, activityRepo repositories.ActivityRepository, logger *zap.Logger) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		activityRepo:    activityRepo,
		logger:          logger,
	}
}

func (s *DestinationService) CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (response_models.DestinationResponse, error) {
	destination := &db_models.Destination{
		City:        stringValue(req.City),
		Country:     stringValue(req.Country),
		Description: req.Description,
	}

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		s.logger.Error("failed to create destination", zap.Error(err))
		return response_models.DestinationResponse{}, utils.ErrDatabaseError
	}

	return toDestinationResponse(destination), nil
}

func (s *DestinationService) GetDestination(ctx context.Context, id uint) (response_models.DestinationResponse, error) {
	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch destination", zap.Uint("destination_id", id), zap.Error(err))
		return response_models.DestinationResponse{}, utils.ErrDatabaseError
	}
	if destination == nil {
		return response_models.DestinationResponse{}, utils.ErrDestinationNotFound
	}
	return toDestinationResponse(destination), nil
}

func (s *DestinationService) ListDestinations(ctx context.Context, country string) ([]response_models.DestinationResponse, error) {
	destinations, err := s.destinationRepo.List(ctx, country)
	if err != nil {
		s.logger.Error("failed to list destinations", zap.String("country", country), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toDestinationResponses(destinations), nil
}

func (s *DestinationService) ListDestinationActivities(ctx context.Context, id uint) ([]response_models.ActivityResponse, error) {
	if _, err := s.GetDestination(ctx, id); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByDestination(ctx, id)
	if err != nil {
		s.logger.Error("failed to list destination activities", zap.Uint("destination_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out, nil
}
