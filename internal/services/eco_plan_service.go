package services

import (
	"context"

	"go.uber.org/zap"

	"ecotrip/internal/models/request_models"
	"ecotrip/internal/models/response_models"
	"ecotrip/internal/repositories"
	"ecotrip/pkg/utils"
)

type EcoPlanServiceInterface interface {
	// Available is false when no AI provider is configured; the endpoint then
	// fails every call with ErrEcoServiceUnavailable.
	Available() bool
	BuildEcoPlan(ctx context.Context, destinationID uint, req request_models.EcoPlanRequest) (response_models.EcoPlanResponse, error)
}

type EcoPlanService struct {
	destinationRepo repositories.DestinationRepository
	ecoClient       utils.EcoSuggestionClient
	logger          *zap.Logger
}

func NewEcoPlanService(destinationRepo repositories.DestinationRepository, ecoClient utils.EcoSuggestionClient, logger *zap.Logger) EcoPlanServiceInterface {
	return &EcoPlanService{
		destinationRepo: destinationRepo,
		ecoClient:       ecoClient,
		logger:          logger,
	}
}

func (s *EcoPlanService) Available() bool {
	return s.ecoClient != nil && s.ecoClient.Available()
}

func (s *EcoPlanService) BuildEcoPlan(ctx context.Context, destinationID uint, req request_models.EcoPlanRequest) (response_models.EcoPlanResponse, error) {
	if !s.Available() {
		return response_models.EcoPlanResponse{}, utils.ErrEcoServiceUnavailable
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		s.logger.Error("failed to fetch destination", zap.Uint("destination_id", destinationID), zap.Error(err))
		return response_models.EcoPlanResponse{}, utils.ErrDatabaseError
	}
	if destination == nil {
		return response_models.EcoPlanResponse{}, utils.ErrDestinationNotFound
	}

	description := ""
	if destination.Description != nil {
		description = *destination.Description
	}

	// A client disconnect does not abort the call; the client's own timeout bounds it.
	text, err := s.ecoClient.SuggestAlternatives(context.WithoutCancel(ctx), description, req.Activities)
	if err != nil {
		return response_models.EcoPlanResponse{}, err
	}

	suggestions, parsed := utils.ParseEcoSuggestions(text)
	if !parsed {
		s.logger.Warn("eco suggestions returned unparsable text",
			zap.Uint("destination_id", destinationID), zap.Int("length", len(text)))
	}

	return response_models.EcoPlanResponse{
		Destination:            toDestinationResponse(destination),
		ActivitesSoumises:      req.Activities,
		SuggestionsEcologiques: suggestions,
	}, nil
}
