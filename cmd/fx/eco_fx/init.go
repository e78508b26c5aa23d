package eco_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecotrip/internal/config"
	"ecotrip/pkg/utils"
)

var Module = fx.Provide(ProvideEcoClient)

// ProvideEcoClient validates the AI configuration once at startup. A missing
// credential disables the eco-plan endpoint instead of failing the process.
func ProvideEcoClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) utils.EcoSuggestionClient {
	client := NewEcoClient(context.Background(), cfg, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewEcoClient(ctx context.Context, cfg config.Config, logger *zap.Logger) utils.EcoSuggestionClient {
	var (
		client utils.EcoSuggestionClient
		err    error
	)

	switch cfg.EcoProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return unavailable(logger, "GEMINI_API_KEY is not set")
		}
		client, err = utils.NewGeminiEcoClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return unavailable(logger, "OPENAI_API_KEY is not set")
		}
		client, err = utils.NewOpenAIEcoClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return unavailable(logger, fmt.Sprintf("unsupported ECO_PROVIDER %q, use 'gemini' or 'openai'", cfg.EcoProvider))
	}

	if err != nil {
		return unavailable(logger, err.Error())
	}

	logger.Info("eco suggestion client ready", zap.String("provider", cfg.EcoProvider))
	return client
}

func unavailable(logger *zap.Logger, reason string) utils.EcoSuggestionClient {
	logger.Warn("eco-plan endpoint disabled", zap.String("reason", reason))
	return utils.NewUnavailableEcoClient(reason)
}
