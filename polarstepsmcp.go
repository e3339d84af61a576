// Package polarstepsmcp exposes read-only Polarsteps travel data as MCP tools.
// It can run as a standalone stdio server (see cmd/polarstepsmcp) or be
// embedded in a host application via NewServer.
package polarstepsmcp

import (
	"log/slog"
	"time"

	"github.com/polartrek/polarstepsmcp/internal/config"
	"github.com/polartrek/polarstepsmcp/internal/errortypes"
	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
	"github.com/polartrek/polarstepsmcp/internal/server"
)

// Config represents the configuration for the Polarsteps MCP service.
type Config = config.Config

// Server represents the Polarsteps MCP service.
type Server struct {
	config     *config.Config
	client     polarsteps.Client
	toolServer server.TravelToolServer
	logger     *slog.Logger
}

// ServerOptions defines the options for creating a new Server.
type ServerOptions struct {
	Config     *Config      // Pre-filled config. If nil, ConfigPath is used.
	ConfigPath string       // Path to config file. Used if Config is nil. If both are empty, configuration is loaded from the default locations.
	Logger     *slog.Logger // External logger. If nil, slog.Default() is used.
}

// NewServer creates a new Polarsteps MCP Server with the given options.
// If opts.Config is provided, it is used directly. Otherwise configuration is
// loaded from opts.ConfigPath, falling back to the default file and
// environment lookup. The configuration must carry a remember token; a
// missing credential is a hard error.
func NewServer(opts ServerOptions) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cfg *Config
	var err error

	if opts.Config != nil {
		cfg = opts.Config
		if err := cfg.Validate(); err != nil {
			return nil, errortypes.ConfigError(err, "Provided configuration is invalid")
		}
	} else if opts.ConfigPath != "" {
		logger.Info("Loading configuration", "path", opts.ConfigPath)
		cfg, err = config.LoadWithPath(opts.ConfigPath)
		if err != nil {
			return nil, errortypes.ConfigError(err, "Failed to load configuration from path: "+opts.ConfigPath)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			return nil, errortypes.ConfigError(err, "Failed to load configuration")
		}
	}

	client, err := CreateClient(cfg, logger)
	if err != nil {
		logger.Error("Failed to create Polarsteps client", "error", err)
		return nil, err
	}

	logger.Info("Initializing travel tool server component")
	mcpServer := server.NewTravelToolServer(client, cfg)
	if err := mcpServer.Initialize(); err != nil {
		logger.Error("Failed to initialize MCP travel tool server component", "error", err)
		return nil, errortypes.ConfigError(err, "Failed to initialize MCP travel tool server component")
	}

	logger.Info("Polarsteps MCP server successfully initialized")
	return &Server{
		config:     cfg,
		client:     client,
		toolServer: mcpServer,
		logger:     logger,
	}, nil
}

// DefaultConfig returns the default configuration for the Polarsteps MCP
// service. The remember token is left empty and must be supplied by the
// caller or the environment before the configuration validates.
func DefaultConfig() *Config {
	return config.NewConfig()
}

// CreateClient builds the Polarsteps API client described by the
// configuration. It is useful for hosts that want direct access to the
// upstream client without running the tool server.
func CreateClient(cfg *Config, logger *slog.Logger) (polarsteps.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Initializing Polarsteps API client",
		"base_url", cfg.EffectiveBaseURL(),
		"timeout_seconds", cfg.Polarsteps.TimeoutSeconds)

	client, err := polarsteps.NewHTTPClient(polarsteps.Options{
		RememberToken: cfg.Polarsteps.RememberToken,
		BaseURL:       cfg.Polarsteps.BaseURL,
		Timeout:       time.Duration(cfg.Polarsteps.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, errortypes.ConfigError(err, "Failed to initialize Polarsteps API client")
	}
	return client, nil
}

// Start starts the Polarsteps MCP service over stdio. It blocks until the
// transport shuts down.
func (s *Server) Start() error {
	s.logger.Info("Starting Polarsteps MCP service")
	return s.toolServer.Start()
}

// Stop stops the Polarsteps MCP service.
func (s *Server) Stop() error {
	s.logger.Info("Stopping Polarsteps MCP service")
	if err := s.toolServer.Stop(); err != nil {
		s.logger.Error("Error stopping tool server", "error", err)
		return err
	}
	s.logger.Info("Polarsteps MCP service stopped")
	return nil
}

// GetClient returns the Polarsteps API client instance used by the server.
func (s *Server) GetClient() polarsteps.Client {
	return s.client
}
