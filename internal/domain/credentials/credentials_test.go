package credentials_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"semrush-mcp/internal/domain/credentials"
)

type fakeStore struct {
	calls int32
	fn    func(call int32) (map[string]string, error)
}

func (s *fakeStore) Name() string { return "fake" }

func (s *fakeStore) Credentials(ctx context.Context) (map[string]string, error) {
	return s.fn(atomic.AddInt32(&s.calls, 1))
}

func TestResolverCachesFirstSuccessfulLookup(t *testing.T) {
	store := &fakeStore{fn: func(int32) (map[string]string, error) {
		return map[string]string{"api_key": "key-123"}, nil
	}}
	resolver := credentials.NewResolver(store)

	for i := 0; i < 3; i++ {
		key, err := resolver.APIKey(context.Background())
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i+1, err)
		}
		if key != "key-123" {
			t.Fatalf("expected key-123, got %q", key)
		}
	}

	if got := atomic.LoadInt32(&store.calls); got != 1 {
		t.Fatalf("expected 1 store lookup, got %d", got)
	}
	if !resolver.Resolved() {
		t.Fatal("expected resolver to be resolved")
	}
}

func TestResolverAcceptedKeyFields(t *testing.T) {
	tests := []struct {
		name  string
		creds map[string]string
	}{
		{"snake case", map[string]string{"api_key": "key-123"}},
		{"upper case", map[string]string{"API_KEY": "key-123"}},
		{"camel case", map[string]string{"apiKey": "key-123"}},
		{"extra fields ignored", map[string]string{"token": "other", "api_key": "key-123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{fn: func(int32) (map[string]string, error) {
				return tt.creds, nil
			}}
			resolver := credentials.NewResolver(store)

			key, err := resolver.APIKey(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key != "key-123" {
				t.Fatalf("expected key-123, got %q", key)
			}
		})
	}
}

func TestResolverNoStore(t *testing.T) {
	resolver := credentials.NewResolver(nil)

	_, err := resolver.APIKey(context.Background())
	if !errors.Is(err, credentials.ErrIntegrationUnavailable) {
		t.Fatalf("expected ErrIntegrationUnavailable, got %v", err)
	}
}

func TestResolverUnrecognizedFieldsKeepProbing(t *testing.T) {
	store := &fakeStore{fn: func(call int32) (map[string]string, error) {
		if call < 3 {
			return map[string]string{"token": "not-a-key", "api_key": ""}, nil
		}
		return map[string]string{"api_key": "late-key"}, nil
	}}
	resolver := credentials.NewResolver(store)

	for i := 0; i < 2; i++ {
		key, err := resolver.APIKey(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "" {
			t.Fatalf("expected empty key before resolution, got %q", key)
		}
		if resolver.Resolved() {
			t.Fatal("resolver should not be resolved yet")
		}
	}

	key, err := resolver.APIKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "late-key" {
		t.Fatalf("expected late-key, got %q", key)
	}

	// Cached now, no further lookups.
	if _, err := resolver.APIKey(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&store.calls); got != 3 {
		t.Fatalf("expected 3 store lookups, got %d", got)
	}
}

func TestResolverStoreError(t *testing.T) {
	storeErr := errors.New("secret backend down")
	store := &fakeStore{fn: func(int32) (map[string]string, error) {
		return nil, storeErr
	}}
	resolver := credentials.NewResolver(store)

	_, err := resolver.APIKey(context.Background())
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if resolver.Resolved() {
		t.Fatal("resolver should not be resolved after store error")
	}

	// Errors are not cached; the next call probes again.
	if _, err := resolver.APIKey(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got := atomic.LoadInt32(&store.calls); got != 2 {
		t.Fatalf("expected 2 store lookups, got %d", got)
	}
}

func TestResolverConcurrentFirstUse(t *testing.T) {
	store := &fakeStore{fn: func(int32) (map[string]string, error) {
		return map[string]string{"api_key": "key-123"}, nil
	}}
	resolver := credentials.NewResolver(store)

	const workers = 25
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := resolver.APIKey(context.Background())
			if err != nil {
				errs <- err
				return
			}
			if key != "key-123" {
				errs <- errors.New("unexpected key " + key)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent resolution failed: %v", err)
	}
	if got := atomic.LoadInt32(&store.calls); got != 1 {
		t.Fatalf("expected a single store lookup, got %d", got)
	}
}
