package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/localrivet/configurator"

	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
)

// Default configuration values
const (
	DefaultConfigFilename = ".polarstepsmcp.json"
	DefaultTimeoutSeconds = 30
	DefaultMaxTrips       = 50
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"

	// EnvPrefix is the prefix for all environment variables read by the
	// server (POLARSTEPS_REMEMBER_TOKEN, POLARSTEPS_BASE_URL, ...).
	EnvPrefix = "POLARSTEPS"
)

// ErrMissingToken is returned when the required session credential is absent.
// The caller treats it as fatal: no tool is registered without a credential.
var ErrMissingToken = errors.New("POLARSTEPS_REMEMBER_TOKEN is not set")

// Config represents the Polarsteps MCP server configuration. It is loaded
// once at startup and treated as immutable afterwards.
type Config struct {
	// Polarsteps contains the external-client configuration.
	Polarsteps struct {
		// RememberToken is the session credential obtained from a
		// logged-in Polarsteps browser session. Required.
		RememberToken string `json:"remember_token" env:"REMEMBER_TOKEN"`

		// BaseURL overrides the API endpoint. Optional.
		BaseURL string `json:"base_url" env:"BASE_URL"`

		// TimeoutSeconds bounds each outbound request.
		TimeoutSeconds int `json:"timeout_seconds" env:"TIMEOUT_SECONDS" validate:"min:1"`
	} `json:"polarsteps"`

	// Tools contains tool-level defaults.
	Tools struct {
		// MaxTrips is the trip-list cap used when a get_user_trips
		// request does not specify max_trips.
		MaxTrips int `json:"max_trips" env:"MAX_TRIPS" validate:"min:1"`
	} `json:"tools"`

	// Logging contains logging-related configuration.
	Logging struct {
		// Level is the minimum log level to emit ("debug", "info", "warn", "error").
		Level string `json:"level" env:"LOG_LEVEL" validate:"required"`

		// Format is the log format to use ("text", "json").
		Format string `json:"format" env:"LOG_FORMAT"`
	} `json:"logging"`
}

// NewConfig creates a new Config instance with default values
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Polarsteps.TimeoutSeconds = DefaultTimeoutSeconds
	cfg.Tools.MaxTrips = DefaultMaxTrips
	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	return cfg
}

// Load loads the configuration from the environment and, when present, the
// default config file.
func Load() (*Config, error) {
	return LoadWithPath(DefaultConfigFilename)
}

// LoadWithPath loads the configuration from the environment layered over the
// given config file (skipped when the file does not exist). The returned
// error is fatal when the required credential is missing.
func LoadWithPath(configPath string) (*Config, error) {
	// Config loading happens before the real logger exists; log to stderr
	// so stdout stays clean for the MCP transport.
	stdLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := NewConfig()

	loader := configurator.New(stdLogger).
		WithProvider(configurator.NewDefaultProvider())

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			stdLogger.Info("Loading configuration file", "path", configPath)
			loader = loader.WithProvider(configurator.NewFileProvider(configPath))
		}
	}

	loader = loader.
		WithProvider(configurator.NewEnvProvider(EnvPrefix)).
		WithValidator(configurator.NewDefaultValidator())

	if err := loader.Load(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the invariants the loader cannot express. The remember
// token is the only required setting; everything else has a default.
func (c *Config) Validate() error {
	if c.Polarsteps.RememberToken == "" {
		return ErrMissingToken
	}
	if c.Tools.MaxTrips < 1 {
		return fmt.Errorf("tools.max_trips must be positive, got %d", c.Tools.MaxTrips)
	}
	if c.Polarsteps.TimeoutSeconds < 1 {
		return fmt.Errorf("polarsteps.timeout_seconds must be positive, got %d", c.Polarsteps.TimeoutSeconds)
	}
	return nil
}

// EffectiveBaseURL returns the configured base URL override, or the client
// default when no override is set.
func (c *Config) EffectiveBaseURL() string {
	if c.Polarsteps.BaseURL != "" {
		return c.Polarsteps.BaseURL
	}
	return polarsteps.DefaultBaseURL
}
