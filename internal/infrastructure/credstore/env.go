package credstore

import (
	"context"
	"fmt"
	"os"

	"semrush-mcp/internal/infrastructure/metrics"
)

// apiKeyEnvVar is the variable read by the environment store.
const apiKeyEnvVar = "SEMRUSH_API_KEY"

// EnvStore reads the API key from the process environment. The lookup
// happens per call, not at construction, so a key provisioned after
// startup is still picked up by the resolver's first resolution.
type EnvStore struct{}

// NewEnvStore creates an environment-backed store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Name identifies the store in logs and errors.
func (s *EnvStore) Name() string { return "env" }

// Credentials returns the credential mapping from the environment.
func (s *EnvStore) Credentials(ctx context.Context) (map[string]string, error) {
	key := os.Getenv(apiKeyEnvVar)
	if key == "" {
		metrics.RecordCredentialLookup(s.Name(), "error")
		return nil, fmt.Errorf("%s is not set", apiKeyEnvVar)
	}
	metrics.RecordCredentialLookup(s.Name(), "success")
	return map[string]string{"api_key": key}, nil
}
