package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		WishlistFile   string `mapstructure:"wishlist_file" yaml:"wishlist_file"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
		MappingsFile   string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"data" yaml:"data"`

	Planner struct {
		Currency              string `mapstructure:"currency" yaml:"currency"`
		DefaultMonthlySavings string `mapstructure:"default_monthly_savings" yaml:"default_monthly_savings"`
	} `mapstructure:"planner" yaml:"planner"`

	AI struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Model            string `mapstructure:"model" yaml:"model"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
		APIKey           string `mapstructure:"api_key" yaml:"-"` // never serialized
	} `mapstructure:"ai" yaml:"ai"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config file, then WISHPLAN_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.wishplan")
	v.AddConfigPath(".wishplan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WISHPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed file should not abort startup; defaults and env
			// variables still apply.
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// The API key is always read from the unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		Logger.Warnf("failed to bind GEMINI_API_KEY environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.wishlist_file", "wishlist.yaml")
	v.SetDefault("data.categories_file", "categories.yaml")
	v.SetDefault("data.mappings_file", "mappings.yaml")

	v.SetDefault("planner.currency", "USD")
	v.SetDefault("planner.default_monthly_savings", "0")

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.fallback_category", "Uncategorized")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format '%s', must be 'text' or 'json'", config.Log.Format)
	}
	if config.Planner.Currency == "" {
		return fmt.Errorf("planner currency must not be empty")
	}
	savings, err := decimal.NewFromString(config.Planner.DefaultMonthlySavings)
	if err != nil {
		return fmt.Errorf("invalid default monthly savings '%s'", config.Planner.DefaultMonthlySavings)
	}
	if savings.IsNegative() {
		return fmt.Errorf("default monthly savings must not be negative")
	}
	return nil
}

// ConfigureLoggingFromConfig applies the loaded configuration to the global
// logger.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if config.Log.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return Logger
}
