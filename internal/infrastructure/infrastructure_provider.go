package infrastructure

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/domain/credentials"
	"semrush-mcp/internal/domain/semrush"
	"semrush-mcp/internal/infrastructure/auth"
	"semrush-mcp/internal/infrastructure/config"
	"semrush-mcp/internal/infrastructure/credstore"
	"semrush-mcp/internal/infrastructure/semrushapi"
	"semrush-mcp/internal/infrastructure/toolcatalog"
)

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Report API client
	ProvideReportClient,

	// Credential resolver
	ProvideCredentialResolver,

	// Tool catalog overrides
	ProvideToolCatalog,

	// Auth validator
	ProvideAuthValidator,
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideReportClient provides the report API client
func ProvideReportClient(cfg *config.Config) semrush.ReportClient {
	return semrushapi.NewClient(semrushapi.ClientConfig{
		BaseURL:         cfg.SemrushBaseURL,
		HTTPTimeout:     time.Duration(cfg.SemrushHTTPTimeout) * time.Second,
		MaxConnsPerHost: cfg.SemrushMaxConnsPerHost,
		MaxIdleConns:    cfg.SemrushMaxIdleConns,
		IdleConnTimeout: time.Duration(cfg.SemrushIdleConnTimeout) * time.Second,
	})
}

// ProvideCredentialResolver builds the configured credential store and
// wraps it in the lazy resolver shared by all report tools.
func ProvideCredentialResolver(cfg *config.Config) *credentials.Resolver {
	store := credstore.New(credstore.Settings{
		Source:          cfg.CredentialSource,
		SecretID:        cfg.AWSSecretID,
		Region:          cfg.AWSRegion,
		PlatformBaseURL: cfg.PlatformBaseURL,
		PlatformAPIKey:  cfg.PlatformAPIKey,
		Integration:     cfg.PlatformIntegration,
	})
	return credentials.NewResolver(store)
}

// ProvideToolCatalog loads the tool catalog overrides
func ProvideToolCatalog(cfg *config.Config) *toolcatalog.Catalog {
	catalog, err := toolcatalog.Load(cfg.ToolsConfigPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.ToolsConfigPath).Msg("Failed to load tool catalog overrides, all tools enabled")
		return &toolcatalog.Catalog{}
	}
	return catalog
}

// ProvideAuthValidator provides the auth validator
func ProvideAuthValidator(ctx context.Context, cfg *config.Config) (*auth.Validator, error) {
	// Get global logger from zerolog
	logger := log.Logger
	return auth.NewValidator(ctx, cfg, logger)
}
