package config_fx

import (
	"go.uber.org/fx"

	"ecotrip/internal/config"
)

var Module = fx.Provide(config.Load)
