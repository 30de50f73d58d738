package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagehq/travelmcp/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.RapidAPIKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "live-key")
	t.Setenv("PORT", "9001")
	t.Setenv("ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "live-key", cfg.RapidAPIKey)
	assert.Equal(t, 9001, cfg.Port)
	assert.True(t, cfg.IsProduction())
}
