package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/infrastructure/metrics"
)

// SecretsClient abstracts the Secrets Manager SDK call for mocking.
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var (
	awsCfg  aws.Config
	awsOnce sync.Once
	awsErr  error
)

// loadAWSConfig loads the default AWS config (env vars, profile, IAM
// role) as a lazy singleton.
func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	awsOnce.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{}
		if region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		awsCfg, awsErr = awsconfig.LoadDefaultConfig(ctx, opts...)
	})
	return awsCfg, awsErr
}

// SecretsManagerStore fetches the credential mapping from one AWS
// Secrets Manager secret. The secret string may be a JSON object of
// credential fields or the bare API key itself.
type SecretsManagerStore struct {
	secretID string
	region   string

	mu     sync.Mutex
	client SecretsClient
}

// NewSecretsManagerStore creates a store reading the given secret. The
// SDK client is built on first use so that constructing the store never
// touches AWS.
func NewSecretsManagerStore(secretID, region string) *SecretsManagerStore {
	return &SecretsManagerStore{secretID: secretID, region: region}
}

// NewSecretsManagerStoreWithClient creates a store with an injected SDK
// client, used by tests.
func NewSecretsManagerStoreWithClient(secretID string, client SecretsClient) *SecretsManagerStore {
	return &SecretsManagerStore{secretID: secretID, client: client}
}

// Name identifies the store in logs and errors.
func (s *SecretsManagerStore) Name() string { return "aws_secrets_manager" }

// Credentials fetches and decodes the secret.
func (s *SecretsManagerStore) Credentials(ctx context.Context) (map[string]string, error) {
	client, err := s.secretsClient(ctx)
	if err != nil {
		metrics.RecordCredentialLookup(s.Name(), "error")
		log.Error().Err(err).Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: &s.secretID})
	if err != nil {
		metrics.RecordCredentialLookup(s.Name(), "error")
		log.Error().Err(err).Str("secret_id", s.secretID).Msg("failed to read secret")
		return nil, fmt.Errorf("failed to read secret %s: %w", s.secretID, err)
	}
	if out.SecretString == nil {
		metrics.RecordCredentialLookup(s.Name(), "error")
		return nil, fmt.Errorf("secret %s has no string value", s.secretID)
	}

	metrics.RecordCredentialLookup(s.Name(), "success")
	return decodeSecret(*out.SecretString), nil
}

func (s *SecretsManagerStore) secretsClient(ctx context.Context) (SecretsClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	cfg, err := loadAWSConfig(ctx, s.region)
	if err != nil {
		return nil, err
	}
	s.client = secretsmanager.NewFromConfig(cfg)
	return s.client, nil
}

// decodeSecret tries the secret as a JSON object first; anything else
// is treated as the bare API key. Non-string JSON fields are dropped.
func decodeSecret(value string) map[string]string {
	var data map[string]any
	if err := json.Unmarshal([]byte(value), &data); err == nil {
		creds := make(map[string]string, len(data))
		for k, v := range data {
			if s, ok := v.(string); ok {
				creds[k] = s
			}
		}
		return creds
	}
	return map[string]string{"api_key": value}
}
