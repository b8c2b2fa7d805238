package config

import (
	"os"
	"strconv"

	"posprep/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Engine EngineConfig
	Server ServerConfig
}

// EngineConfig holds the validation engine tuning knobs. Header
// resolution and suggestion thresholds are pinned heuristics, so they
// live here as named settings instead of literals inside the rules.
type EngineConfig struct {
	// HeaderScanRows bounds how deep the header resolver scans when
	// looking for a table's marker phrase.
	HeaderScanRows int
	// SuggestionThreshold is the minimum [0,100] similarity score at
	// which a ghost reference gets a suggested correction.
	SuggestionThreshold int
	// CodeLength is the required digit count for fixed-length codes.
	CodeLength int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Engine: EngineConfig{
			HeaderScanRows:      getEnvIntOrDefault("VERIFY_HEADER_SCAN_ROWS", 50),
			SuggestionThreshold: getEnvIntOrDefault("VERIFY_SUGGESTION_THRESHOLD", 85),
			CodeLength:          getEnvIntOrDefault("VERIFY_CODE_LENGTH", 4),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// DefaultEngine returns the engine settings used when no environment is
// consulted (library embedding, tests).
func DefaultEngine() EngineConfig {
	return EngineConfig{
		HeaderScanRows:      50,
		SuggestionThreshold: 85,
		CodeLength:          4,
	}
}

func validateConfig(config *Config) error {
	if config.Engine.HeaderScanRows <= 0 {
		return errors.ConfigInvalid("header scan window must be positive")
	}
	if config.Engine.SuggestionThreshold < 0 || config.Engine.SuggestionThreshold > 100 {
		return errors.ConfigInvalid("suggestion threshold must be in [0,100]")
	}
	if config.Engine.CodeLength <= 0 {
		return errors.ConfigInvalid("code length must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
