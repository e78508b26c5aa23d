package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecotrip/internal/api/controllers"
	"ecotrip/pkg/middleware"
	"ecotrip/pkg/utils"
)

func NewRouter(
	logger *zap.Logger,
	allowOrigins []string,
	usersController *controllers.UsersController,
	destinationsController *controllers.DestinationsController,
	activitiesController *controllers.ActivitiesController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORSMiddleware(allowOrigins))

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "The requested URL was not found on the server")
	})

	RegisterRoutes(r, usersController, destinationsController, activitiesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	usersController *controllers.UsersController,
	destinationsController *controllers.DestinationsController,
	activitiesController *controllers.ActivitiesController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	usersGroup := r.Group("/users")
	usersGroup.POST("", usersController.CreateUser)
	usersGroup.GET("/:id", usersController.GetUser)
	usersGroup.PUT("/:id", usersController.UpdateUser)
	usersGroup.DELETE("/:id", usersController.DeleteUser)
	usersGroup.GET("/:id/favorites", usersController.ListFavorites)
	usersGroup.POST("/:id/favorites", usersController.AddFavorite)
	usersGroup.DELETE("/:id/favorites/:destinationId", usersController.RemoveFavorite)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.POST("", destinationsController.CreateDestination)
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestination)
	destinationsGroup.GET("/:id/activities", destinationsController.ListDestinationActivities)
	destinationsGroup.POST("/:id/eco-plan", destinationsController.EcoPlan)

	activitiesGroup := r.Group("/activities")
	activitiesGroup.POST("", activitiesController.CreateActivity)
	activitiesGroup.GET("/:id", activitiesController.GetActivity)
}
