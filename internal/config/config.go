package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Van     VanConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

// VanConfig holds the van's advisory limits.
type VanConfig struct {
	MaxVolume float64 // millilitres
	MaxBudget float64
}

// StorageConfig holds data file configuration.
type StorageConfig struct {
	DataFile string // a ".gz" suffix selects gzip compression
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Option changes configuration read from the environment, before validation.
type Option func(*Config)

// Load loads configuration from environment variables, applies opts in order
// and validates the result.
func Load(opts ...Option) (*Config, error) {
	cfg := fromEnv()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func fromEnv() *Config {
	return &Config{
		Van: VanConfig{
			MaxVolume: getEnvAsFloat("VAN_MAX_VOLUME", 500),
			MaxBudget: getEnvAsFloat("VAN_MAX_BUDGET", 1500),
		},
		Storage: StorageConfig{
			DataFile: getEnv("DATA_FILE", "coffee_data.txt"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Van.MaxVolume <= 0 {
		return fmt.Errorf("invalid van max volume: %v (must be positive)", c.Van.MaxVolume)
	}

	if c.Van.MaxBudget <= 0 {
		return fmt.Errorf("invalid van max budget: %v (must be positive)", c.Van.MaxBudget)
	}

	if c.Storage.DataFile == "" {
		return fmt.Errorf("data file is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
