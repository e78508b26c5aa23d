package users_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotrip/internal/repositories"
	"ecotrip/internal/services"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, destinationRepo repositories.DestinationRepository, logger *zap.Logger) services.UserServiceInterface {
	return services.NewUserService(userRepo, destinationRepo, logger)
}
