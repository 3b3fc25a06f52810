package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoscontam/finlab/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{config.EnvDB, config.EnvLogLevel, config.EnvAddr, config.EnvCurrency, config.EnvSeed} {
		t.Setenv(k, "")
	}

	cfg := config.FromEnv()
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(config.EnvDB, "/tmp/finlab-test.db")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvAddr, "127.0.0.1:9999")
	t.Setenv(config.EnvCurrency, "usd")
	t.Setenv(config.EnvSeed, "42")

	cfg := config.FromEnv()
	assert.Equal(t, "/tmp/finlab-test.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, "USD", cfg.Currency)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_InvalidSeedIgnored(t *testing.T) {
	t.Setenv(config.EnvSeed, "not-a-number")
	assert.Nil(t, config.FromEnv().Seed)
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "LOUD"
	cfg.Addr = ""
	cfg.Currency = "XYZ"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
	assert.Contains(t, err.Error(), "FINLAB_ADDR cannot be empty")
	assert.Contains(t, err.Error(), "unsupported currency")
}
