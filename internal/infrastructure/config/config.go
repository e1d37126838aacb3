package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the SEMrush MCP service
type Config struct {
	// HTTP Server - using SEMRUSH_MCP_ prefix to avoid collisions
	HTTPPort  string `env:"SEMRUSH_MCP_HTTP_PORT" envDefault:"8092"`
	LogLevel  string `env:"SEMRUSH_MCP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SEMRUSH_MCP_LOG_FORMAT" envDefault:"json"` // json or console

	// Report API client
	SemrushBaseURL         string `env:"SEMRUSH_BASE_URL" envDefault:"https://api.semrush.com"`
	SemrushHTTPTimeout     int    `env:"SEMRUSH_HTTP_TIMEOUT" envDefault:"30"`
	SemrushMaxConnsPerHost int    `env:"SEMRUSH_MAX_CONNS_PER_HOST" envDefault:"50"`
	SemrushMaxIdleConns    int    `env:"SEMRUSH_MAX_IDLE_CONNS" envDefault:"100"`
	SemrushIdleConnTimeout int    `env:"SEMRUSH_IDLE_CONN_TIMEOUT" envDefault:"90"`

	// Credential source selection. The env source reads SEMRUSH_API_KEY
	// at lookup time rather than here, so late-provisioned keys work.
	CredentialSource    string `env:"CREDENTIAL_SOURCE" envDefault:"env"`
	AWSSecretID         string `env:"AWS_SECRET_ID"`
	AWSRegion           string `env:"AWS_REGION"`
	PlatformBaseURL     string `env:"PLATFORM_BASE_URL"`
	PlatformAPIKey      string `env:"PLATFORM_API_KEY"`
	PlatformIntegration string `env:"PLATFORM_INTEGRATION" envDefault:"semrush"`

	// Tool catalog overrides
	ToolsConfigPath string `env:"SEMRUSH_TOOLS_CONFIG" envDefault:"configs/semrush-tools.yml"`

	// Authentication
	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer  string `env:"AUTH_ISSUER"`
	Account     string `env:"ACCOUNT"`
	AuthJWKSURL string `env:"AUTH_JWKS_URL"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(os.Getenv("SEMRUSH_MCP_LOG_LEVEL")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_LEVEL")); global != "" {
			cfg.LogLevel = global
		}
	}
	if strings.TrimSpace(os.Getenv("SEMRUSH_MCP_LOG_FORMAT")) == "" {
		if global := strings.TrimSpace(os.Getenv("LOG_FORMAT")); global != "" {
			cfg.LogFormat = global
		}
	}
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.Account) == "" {
			return nil, fmt.Errorf("ACCOUNT is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}
	return cfg, nil
}
