package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "contactory", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadWithOptions_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "contactory_test")
	t.Setenv("DB_USER", "app")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "contactory_test", cfg.Database.DBName)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Tracing.Enabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadWithOptions_MissingEnvFileIsFine(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.does-not-exist"})
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
