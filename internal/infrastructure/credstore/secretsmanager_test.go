package credstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type mockSecrets struct {
	GetSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func (m *mockSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return m.GetSecretValueFunc(ctx, params, optFns...)
}

func secretOutput(value string) *secretsmanager.GetSecretValueOutput {
	return &secretsmanager.GetSecretValueOutput{SecretString: &value}
}

func TestSecretsManagerStoreJSONSecret(t *testing.T) {
	client := &mockSecrets{
		GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			if *params.SecretId != "prod/semrush" {
				t.Errorf("secret id = %q, want prod/semrush", *params.SecretId)
			}
			return secretOutput(`{"api_key": "sm-key", "account": "acme", "limit": 5}`), nil
		},
	}
	store := NewSecretsManagerStoreWithClient("prod/semrush", client)

	creds, err := store.Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds["api_key"] != "sm-key" {
		t.Fatalf("api_key = %q, want sm-key", creds["api_key"])
	}
	if creds["account"] != "acme" {
		t.Fatalf("account = %q, want acme", creds["account"])
	}
	if _, ok := creds["limit"]; ok {
		t.Fatal("non-string secret field must be dropped")
	}
}

func TestSecretsManagerStoreBareSecret(t *testing.T) {
	client := &mockSecrets{
		GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return secretOutput("bare-key"), nil
		},
	}
	store := NewSecretsManagerStoreWithClient("prod/semrush", client)

	creds, err := store.Credentials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds["api_key"] != "bare-key" {
		t.Fatalf("api_key = %q, want bare-key", creds["api_key"])
	}
}

func TestSecretsManagerStoreErrors(t *testing.T) {
	t.Run("sdk error", func(t *testing.T) {
		sdkErr := errors.New("aws down")
		client := &mockSecrets{
			GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return nil, sdkErr
			},
		}
		store := NewSecretsManagerStoreWithClient("prod/semrush", client)
		if _, err := store.Credentials(context.Background()); !errors.Is(err, sdkErr) {
			t.Fatalf("expected wrapped sdk error, got %v", err)
		}
	})

	t.Run("binary secret", func(t *testing.T) {
		client := &mockSecrets{
			GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return &secretsmanager.GetSecretValueOutput{}, nil
			},
		}
		store := NewSecretsManagerStoreWithClient("prod/semrush", client)
		if _, err := store.Credentials(context.Background()); err == nil {
			t.Fatal("expected an error for a secret without a string value")
		}
	})
}
