package controllers_fx

import (
	"go.uber.org/fx"

	"ecotrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewActivitiesController))
