package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	// Run from a temp dir so no developer config file leaks in.
	t.Chdir(t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "wishlist.yaml", config.Data.WishlistFile)
	assert.Equal(t, "USD", config.Planner.Currency)
	assert.Equal(t, "0", config.Planner.DefaultMonthlySavings)
	assert.False(t, config.AI.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WISHPLAN_LOG_LEVEL", "debug")
	t.Setenv("WISHPLAN_PLANNER_CURRENCY", "EUR")
	t.Setenv("GEMINI_API_KEY", "test-key")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "EUR", config.Planner.Currency)
	assert.Equal(t, "test-key", config.AI.APIKey)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "BadLogLevel", mutate: func(c *Config) { c.Log.Level = "loud" }},
		{name: "BadLogFormat", mutate: func(c *Config) { c.Log.Format = "xml" }},
		{name: "EmptyCurrency", mutate: func(c *Config) { c.Planner.Currency = "" }},
		{name: "BadSavings", mutate: func(c *Config) { c.Planner.DefaultMonthlySavings = "lots" }},
		{name: "NegativeSavings", mutate: func(c *Config) { c.Planner.DefaultMonthlySavings = "-5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.Log.Level = "info"
			config.Log.Format = "text"
			config.Planner.Currency = "USD"
			config.Planner.DefaultMonthlySavings = "0"

			tt.mutate(config)
			assert.Error(t, validateConfig(config))
		})
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("WISHPLAN_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("WISHPLAN_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WISHPLAN_TEST_MISSING", "fallback"))
}
