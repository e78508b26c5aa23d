package activities_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotrip/internal/repositories"
	"ecotrip/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository, logger *zap.Logger) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, logger)
}
