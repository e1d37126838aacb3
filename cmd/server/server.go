package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/infrastructure/config"
	"semrush-mcp/internal/infrastructure/logger"
	_ "semrush-mcp/internal/infrastructure/metrics" // Register Prometheus metrics
	"semrush-mcp/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	config     *config.Config
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

// @title SEMrush MCP Service
// @version 1.0
// @description Model Context Protocol (MCP) service exposing SEMrush analytics reports as tools.
// @BasePath /
func (app *Application) Start(ctx context.Context) error {
	log.Info().Str("address", fmt.Sprintf(":%s", app.config.HTTPPort)).Msg("Server listening")
	return app.httpServer.Run()
}

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SEMrush MCP service")

	// Create application with dependency injection
	application, err := CreateApplication(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	// Start application
	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
