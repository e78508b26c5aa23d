package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"ecotrip/cmd/fx/activities_fx"
	"ecotrip/cmd/fx/config_fx"
	"ecotrip/cmd/fx/controllers_fx"
	"ecotrip/cmd/fx/db_fx"
	"ecotrip/cmd/fx/destinations_fx"
	"ecotrip/cmd/fx/eco_fx"
	"ecotrip/cmd/fx/logger_fx"
	"ecotrip/cmd/fx/users_fx"
	"ecotrip/internal/api"
	"ecotrip/internal/api/controllers"
	"ecotrip/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		eco_fx.Module,
		users_fx.Module,
		destinations_fx.Module,
		activities_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	usersController *controllers.UsersController,
	destinationsController *controllers.DestinationsController,
	activitiesController *controllers.ActivitiesController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	return api.NewRouter(logger, cfg.AllowOrigins, usersController, destinationsController, activitiesController)
}
