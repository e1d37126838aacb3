// Package credstore provides credentials.Store implementations backed
// by the process environment, AWS Secrets Manager, and the integration
// platform.
package credstore

import (
	"strings"

	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/domain/credentials"
)

// Source names accepted by CREDENTIAL_SOURCE.
const (
	SourceEnv      = "env"
	SourceAWS      = "aws"
	SourcePlatform = "platform"
)

// Settings selects and configures the credential source.
type Settings struct {
	Source          string
	SecretID        string
	Region          string
	PlatformBaseURL string
	PlatformAPIKey  string
	Integration     string
}

// New builds the store for the configured source. A misconfigured
// source yields no store at all; the resolver then reports the
// integration unavailable on every report call instead of failing
// startup.
func New(settings Settings) credentials.Store {
	switch strings.ToLower(strings.TrimSpace(settings.Source)) {
	case "", SourceEnv:
		return NewEnvStore()
	case SourceAWS:
		if settings.SecretID == "" {
			log.Warn().Msg("credential source aws selected without AWS_SECRET_ID, integration will be unavailable")
			return nil
		}
		return NewSecretsManagerStore(settings.SecretID, settings.Region)
	case SourcePlatform:
		if settings.PlatformBaseURL == "" || settings.PlatformAPIKey == "" {
			log.Warn().Msg("credential source platform selected without PLATFORM_BASE_URL or PLATFORM_API_KEY, integration will be unavailable")
			return nil
		}
		return NewPlatformStore(settings.PlatformBaseURL, settings.PlatformAPIKey, settings.Integration)
	default:
		log.Warn().Str("source", settings.Source).Msg("unknown credential source, integration will be unavailable")
		return nil
	}
}
