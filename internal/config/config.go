// Package config loads and validates the dashboard server configuration.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

// Config holds the dashboard server configuration. The Polygon API key is
// deliberately environment-only so it never lands in a config file.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr" validate:"required"`
	// Provider selects the market data provider.
	Provider string `yaml:"provider" validate:"required,oneof=polygon"`
	// PolygonApiKey is read from the POLYGON_API_KEY environment variable.
	PolygonApiKey string `yaml:"-" validate:"required"`
	// CacheTTL bounds how long a computed response may be served from the
	// presentation cache before it is recomputed.
	CacheTTL time.Duration `yaml:"cache_ttl" validate:"min=0"`
	// LogLevel is the zap level name ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Addr:          ":8080",
		Provider:      "polygon",
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
		CacheTTL:      5 * time.Minute,
		LogLevel:      "info",
	}
}

// Load reads a YAML config file, applies the environment override for the
// API key, and validates the result. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config file %s", path)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	return cfg, nil
}
