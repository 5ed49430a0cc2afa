// Package config loads the bluegreen service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPort        = 3000
	DefaultEnvironment = "UNKNOWN"
	DefaultVersion     = "1.0.0"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Environment string `validate:"required"`
	Version     string `validate:"required"`
	Port        int    `validate:"gt=0,lte=65535"`
	Host        string `validate:"required"`
}

var validate = validator.New()

// Load reads ENVIRONMENT, VERSION and PORT with defaults and validates the result.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Environment: getEnv(getenv, "ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv(getenv, "VERSION", DefaultVersion),
		Port:        getEnvInt(getenv, "PORT", DefaultPort),
		Host:        "0.0.0.0",
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address, host:port.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(getenv func(string) string, key string, defaultValue int) int {
	if value := getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
