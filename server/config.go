// Package server exposes the Gong API as MCP tools over a stdio transport.
package server

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/wnoronha-3blmedia/gong-mcp/gong"
)

// Config holds the process configuration, loaded from the environment.
type Config struct {
	// AccessKey is the Gong API access key. Required.
	AccessKey string `env:"GONG_ACCESS_KEY" env-required:"true" env-description:"Gong API access key"`

	// AccessSecret is the Gong API access secret. Required.
	AccessSecret string `env:"GONG_ACCESS_SECRET" env-required:"true" env-description:"Gong API access secret"`

	// BaseURL overrides the Gong API root, mainly for testing against mocks.
	BaseURL string `env:"GONG_BASE_URL" env-default:"https://api.gong.io/v2" env-description:"Gong API base URL"`

	// LogLevel sets the minimum log level: debug, info, warn, or error.
	LogLevel string `env:"GONG_LOG_LEVEL" env-default:"info" env-description:"log level (debug|info|warn|error)"`
}

// LoadConfig reads the configuration from the environment.
// Returns an error when a required credential is missing; the caller is
// expected to treat that as fatal before serving any request.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return &cfg, nil
}

// Credentials returns the configured Gong credential pair.
func (c *Config) Credentials() gong.Credentials {
	return gong.Credentials{
		AccessKey:    c.AccessKey,
		AccessSecret: c.AccessSecret,
	}
}

// SlogLevel maps the configured log level to a slog.Level.
// Unrecognized values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
