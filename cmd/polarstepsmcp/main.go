package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/polartrek/polarstepsmcp/internal/config"
	"github.com/polartrek/polarstepsmcp/internal/errortypes"
	"github.com/polartrek/polarstepsmcp/internal/logging"
	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
	"github.com/polartrek/polarstepsmcp/internal/server"
)

func main() {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		appLogger := logging.Setup("info", "text")
		if errors.Is(err, config.ErrMissingToken) {
			appLogger.Error("POLARSTEPS_REMEMBER_TOKEN is not set. Copy the remember_token cookie from a logged-in polarsteps.com session and export it before starting the server.")
		} else {
			appLogger.Error("Failed to load configuration", "error", err)
		}
		os.Exit(1)
	}

	// All logging goes to stderr; stdout belongs to the MCP transport.
	appLogger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	appLogger.Info("Polarsteps MCP Server - Starting...")

	client, err := polarsteps.NewHTTPClient(polarsteps.Options{
		RememberToken: cfg.Polarsteps.RememberToken,
		BaseURL:       cfg.Polarsteps.BaseURL,
		Timeout:       time.Duration(cfg.Polarsteps.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		errortypes.LogError(appLogger, errortypes.ConfigError(err, "Failed to initialize Polarsteps API client"))
		os.Exit(1)
	}
	appLogger.Info("Polarsteps API client initialized", "base_url", cfg.EffectiveBaseURL())

	srv := server.NewTravelToolServer(client, cfg)
	if err := srv.Initialize(); err != nil {
		errortypes.LogError(appLogger, errortypes.ConfigError(err, "Failed to initialize MCP server"))
		os.Exit(1)
	}
	appLogger.Info("MCP server initialized")

	setupSignalHandler(srv, appLogger)

	// Start blocks until the stdio transport is closed.
	appLogger.Info("Starting MCP server...")
	if err := srv.Start(); err != nil {
		errortypes.LogError(appLogger, errortypes.UpstreamError(err, "MCP server failed"))
		os.Exit(1)
	}
}

// setupSignalHandler sets up a signal handler for graceful shutdown.
func setupSignalHandler(srv server.TravelToolServer, log *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Received shutdown signal, terminating gracefully...")
		if err := srv.Stop(); err != nil {
			log.Error("Error during shutdown", "error", err)
		}
		log.Info("Shutdown complete")
		os.Exit(0)
	}()
}
