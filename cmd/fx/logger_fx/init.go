package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecotrip/internal/config"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	// Package-level helpers such as utils.HandleServiceError log through zap.L().
	restore := zap.ReplaceGlobals(logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			restore()
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}
