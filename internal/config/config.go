package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	AppEnv       string
	GinMode      string
	DatabaseURL  string
	AutoMigrate  bool
	AllowOrigins []string
	EcoProvider  string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
}

var ErrMissingDatabaseURL = errors.New("missing env: DATABASE_URL")

// Load reads the environment, after an optional .env file. The AI keys may be
// empty; DATABASE_URL may not.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		AppEnv:       getenv("APP_ENV", "production"),
		GinMode:      getenv("GIN_MODE", "release"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AutoMigrate:  getenv("DB_AUTO_MIGRATE", "true") == "true",
		AllowOrigins: splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		EcoProvider:  strings.ToLower(getenv("ECO_PROVIDER", "gemini")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
