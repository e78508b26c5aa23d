package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "GIN_MODE", "DATABASE_URL", "DB_AUTO_MIGRATE", "ALLOW_ORIGINS",
		"ECO_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/ecotrip")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "release", cfg.GinMode)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "gemini", cfg.EcoProvider)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db/ecotrip")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("ALLOW_ORIGINS", " https://a.example.com , ,https://b.example.com")
	t.Setenv("ECO_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowOrigins)
	assert.Equal(t, "openai", cfg.EcoProvider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}
