package semrush_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"semrush-mcp/internal/domain/credentials"
	"semrush-mcp/internal/domain/semrush"
)

type spyClient struct {
	calls    int32
	endpoint semrush.Endpoint
	query    string
	raw      *semrush.RawReport
	err      error
}

func (c *spyClient) FetchReport(ctx context.Context, endpoint semrush.Endpoint, query string) (*semrush.RawReport, error) {
	atomic.AddInt32(&c.calls, 1)
	c.endpoint = endpoint
	c.query = query
	if c.err != nil {
		return nil, c.err
	}
	return c.raw, nil
}

type countingStore struct {
	calls int32
}

func (s *countingStore) Name() string { return "counting" }

func (s *countingStore) Credentials(ctx context.Context) (map[string]string, error) {
	atomic.AddInt32(&s.calls, 1)
	return map[string]string{"api_key": "test-key"}, nil
}

func newService(raw *semrush.RawReport) (*semrush.ReportService, *spyClient, *countingStore) {
	client := &spyClient{raw: raw}
	store := &countingStore{}
	return semrush.NewReportService(client, credentials.NewResolver(store)), client, store
}

func textReport(status int, body string) *semrush.RawReport {
	return &semrush.RawReport{StatusCode: status, ContentType: "text/plain; charset=utf-8", Body: []byte(body)}
}

func TestFetchValidationFailureIssuesNoIO(t *testing.T) {
	service, client, store := newService(textReport(200, "ok"))

	_, err := service.Fetch(context.Background(), "domain_ad_history", map[string]any{})
	var missing *semrush.MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingArgumentError, got %v", err)
	}
	if got := atomic.LoadInt32(&client.calls); got != 0 {
		t.Fatalf("expected zero report requests, got %d", got)
	}
	if got := atomic.LoadInt32(&store.calls); got != 0 {
		t.Fatalf("expected zero credential lookups, got %d", got)
	}
}

func TestFetchUnknownReport(t *testing.T) {
	service, client, _ := newService(textReport(200, "ok"))

	_, err := service.Fetch(context.Background(), "no_such_report", map[string]any{})
	if err == nil {
		t.Fatal("expected an error for an unknown report type")
	}
	if got := atomic.LoadInt32(&client.calls); got != 0 {
		t.Fatalf("expected zero report requests, got %d", got)
	}
}

func TestFetchResolvesCredentialOnce(t *testing.T) {
	service, client, store := newService(textReport(200, "ok"))

	for i := 0; i < 5; i++ {
		if _, err := service.Fetch(context.Background(), "keyword_difficulty", map[string]any{"phrase": "seo"}); err != nil {
			t.Fatalf("unexpected error on call %d: %v", i+1, err)
		}
	}

	if got := atomic.LoadInt32(&store.calls); got != 1 {
		t.Fatalf("expected a single credential lookup, got %d", got)
	}
	if got := atomic.LoadInt32(&client.calls); got != 5 {
		t.Fatalf("expected 5 report requests, got %d", got)
	}
}

func TestFetchNoStoreConfigured(t *testing.T) {
	client := &spyClient{raw: textReport(200, "ok")}
	service := semrush.NewReportService(client, credentials.NewResolver(nil))

	_, err := service.Fetch(context.Background(), "keyword_difficulty", map[string]any{"phrase": "seo"})
	if !errors.Is(err, credentials.ErrIntegrationUnavailable) {
		t.Fatalf("expected ErrIntegrationUnavailable, got %v", err)
	}
	if got := atomic.LoadInt32(&client.calls); got != 0 {
		t.Fatalf("expected zero report requests, got %d", got)
	}
}

func TestFetchSendsOrderedQuery(t *testing.T) {
	service, client, _ := newService(textReport(200, "ok"))

	_, err := service.Fetch(context.Background(), "domain_ad_history", map[string]any{"domain": "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "type=domain_ad_history&key=test-key&domain=example.com&database=us"
	if client.query != want {
		t.Fatalf("query = %q, want %q", client.query, want)
	}
	if client.endpoint != semrush.EndpointAnalytics {
		t.Fatalf("endpoint = %v, want analytics", client.endpoint)
	}
}

func TestFetchRoutesBacklinksFamily(t *testing.T) {
	service, client, _ := newService(textReport(200, "ok"))

	_, err := service.Fetch(context.Background(), "backlinks_overview", map[string]any{
		"target":      "example.com",
		"target_type": "root_domain",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.endpoint != semrush.EndpointBacklinks {
		t.Fatalf("endpoint = %v, want backlinks", client.endpoint)
	}
}

func TestFetchRemoteFailure(t *testing.T) {
	service, _, _ := newService(textReport(403, "ERROR 120 :: WRONG KEY - ID PAIR"))

	_, err := service.Fetch(context.Background(), "keyword_difficulty", map[string]any{"phrase": "seo"})
	var remote *semrush.RemoteRequestError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteRequestError, got %v", err)
	}
	if remote.StatusCode != 403 {
		t.Fatalf("status = %d, want 403", remote.StatusCode)
	}
	if remote.Body != "ERROR 120 :: WRONG KEY - ID PAIR" {
		t.Fatalf("body = %q", remote.Body)
	}
}

func TestFetchTransportErrorPropagates(t *testing.T) {
	transportErr := errors.New("connection reset")
	client := &spyClient{err: transportErr}
	store := &countingStore{}
	service := semrush.NewReportService(client, credentials.NewResolver(store))

	_, err := service.Fetch(context.Background(), "keyword_difficulty", map[string]any{"phrase": "seo"})
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchNormalization(t *testing.T) {
	tests := []struct {
		name     string
		raw      *semrush.RawReport
		wantData bool
		wantRaw  string
	}{
		{
			name: "json body decoded",
			raw: &semrush.RawReport{
				StatusCode:  200,
				ContentType: "application/json",
				Body:        []byte(`{"rows": [1, 2]}`),
			},
			wantData: true,
		},
		{
			name:    "text body kept raw",
			raw:     textReport(200, "Domain;Rank\nexample.com;1"),
			wantRaw: "Domain;Rank\nexample.com;1",
		},
		{
			name: "mislabeled json falls back to raw",
			raw: &semrush.RawReport{
				StatusCode:  200,
				ContentType: "application/json",
				Body:        []byte("Domain;Rank"),
			},
			wantRaw: "Domain;Rank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newService(tt.raw)
			report, err := service.Fetch(context.Background(), "keyword_difficulty", map[string]any{"phrase": "seo"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Type != "keyword_difficulty" {
				t.Fatalf("type = %q", report.Type)
			}
			if report.StatusCode != 200 {
				t.Fatalf("status = %d", report.StatusCode)
			}
			if tt.wantData && report.Data == nil {
				t.Fatal("expected decoded data")
			}
			if !tt.wantData && report.Data != nil {
				t.Fatalf("unexpected decoded data: %v", report.Data)
			}
			if report.Raw != tt.wantRaw {
				t.Fatalf("raw = %q, want %q", report.Raw, tt.wantRaw)
			}
		})
	}
}
