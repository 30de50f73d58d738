// Package config loads server configuration from the environment.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration values for the server process.
type Config struct {
	// RapidAPIKey selects live-vs-fallback mode for the search adapters.
	// When empty, every tool call serves deterministic fallback data.
	RapidAPIKey string `mapstructure:"RAPIDAPI_KEY"`

	// Port is the HTTP listen port.
	Port int `mapstructure:"PORT"`

	// Env is the application environment ("development" or "production").
	Env string `mapstructure:"ENV"`
}

// Load initializes viper to read config values from the environment with defaults.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("RAPIDAPI_KEY", "")
	v.SetDefault("PORT", 8000)
	v.SetDefault("ENV", "development")

	// AutomaticEnv alone does not surface env vars through Unmarshal, so bind
	// each key explicitly.
	for _, key := range []string{"RAPIDAPI_KEY", "PORT", "ENV"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction checks if the environment is production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
