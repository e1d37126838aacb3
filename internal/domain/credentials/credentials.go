package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Store supplies raw credentials for one external integration.
// Implementations live in infrastructure; the resolver only reads the
// returned mapping and never writes back to the source.
type Store interface {
	// Name identifies the backing source in wrapped errors.
	Name() string
	// Credentials fetches the credential mapping from the source.
	Credentials(ctx context.Context) (map[string]string, error)
}

// ErrIntegrationUnavailable is returned when no credential store is
// configured for the integration.
var ErrIntegrationUnavailable = errors.New("integration unavailable: no credential source configured")

// apiKeyFields are the mapping keys accepted as an API key, in lookup order.
var apiKeyFields = [...]string{"api_key", "API_KEY", "apiKey"}

// Resolver resolves the integration API key on first use and caches it
// for the lifetime of the process. Resolution is deferred to the first
// APIKey call because credentials may be provisioned after startup.
type Resolver struct {
	store Store

	mu       sync.RWMutex
	apiKey   string
	resolved bool
}

// NewResolver creates a resolver backed by store. A nil store is valid
// and makes every APIKey call fail with ErrIntegrationUnavailable.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// APIKey returns the cached API key, fetching it from the store on
// first use. When the store response carries none of the accepted key
// fields, the previous value is returned unchanged and the next call
// probes the store again.
func (r *Resolver) APIKey(ctx context.Context) (string, error) {
	r.mu.RLock()
	if r.resolved {
		key := r.apiKey
		r.mu.RUnlock()
		return key, nil
	}
	r.mu.RUnlock()

	if r.store == nil {
		return "", ErrIntegrationUnavailable
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if r.resolved {
		return r.apiKey, nil
	}

	creds, err := r.store.Credentials(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch credentials from %s: %w", r.store.Name(), err)
	}

	for _, field := range apiKeyFields {
		if key := creds[field]; key != "" {
			r.apiKey = key
			r.resolved = true
			return key, nil
		}
	}

	return r.apiKey, nil
}

// Resolved reports whether an API key has been cached.
func (r *Resolver) Resolved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolved
}
