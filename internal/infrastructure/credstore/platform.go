package credstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/infrastructure/metrics"
)

// defaultIntegration is the integration looked up on the platform when
// none is configured.
const defaultIntegration = "semrush"

// PlatformStore fetches integration credentials from the credential
// platform API. The platform holds per-integration credential mappings
// and serves them to authorized services over a bearer-authenticated
// endpoint.
type PlatformStore struct {
	baseURL     string
	apiKey      string
	integration string
	http        *resty.Client
}

// NewPlatformStore creates a platform-backed store.
func NewPlatformStore(baseURL, apiKey, integration string) *PlatformStore {
	if integration == "" {
		integration = defaultIntegration
	}
	return &PlatformStore{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		integration: integration,
		http: resty.New().
			SetHeader("User-Agent", "semrush-mcp/1.0").
			SetTimeout(15 * time.Second).
			SetRetryCount(0),
	}
}

// Name identifies the store in logs and errors.
func (s *PlatformStore) Name() string { return "platform" }

// Credentials fetches the integration's credential mapping.
func (s *PlatformStore) Credentials(ctx context.Context) (map[string]string, error) {
	var creds map[string]string
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetResult(&creds).
		Get(fmt.Sprintf("%s/v1/integrations/%s/credentials", s.baseURL, s.integration))
	if err != nil {
		metrics.RecordCredentialLookup(s.Name(), "error")
		log.Error().Err(err).Str("integration", s.integration).Msg("failed to query credential platform")
		return nil, fmt.Errorf("failed to query credential platform: %w", err)
	}
	if resp.IsError() {
		metrics.RecordCredentialLookup(s.Name(), "error")
		log.Error().Int("status", resp.StatusCode()).Str("integration", s.integration).Msg("credential platform error")
		return nil, fmt.Errorf("credential platform error (status %d): %s", resp.StatusCode(), resp.String())
	}

	metrics.RecordCredentialLookup(s.Name(), "success")
	return creds, nil
}
