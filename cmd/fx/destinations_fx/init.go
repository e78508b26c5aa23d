package destinations_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotrip/internal/repositories"
	"ecotrip/internal/services"
	"ecotrip/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService, provideEcoPlanService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository, activityRepo repositories.ActivityRepository, logger *zap.Logger) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, activityRepo, logger)
}

func provideEcoPlanService(destinationRepo repositories.DestinationRepository, ecoClient utils.EcoSuggestionClient, logger *zap.Logger) services.EcoPlanServiceInterface {
	return services.NewEcoPlanService(destinationRepo, ecoClient, logger)
}
