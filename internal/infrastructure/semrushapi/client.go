package semrushapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/domain/semrush"
	"semrush-mcp/internal/infrastructure/metrics"
)

const defaultBaseURL = "https://api.semrush.com"

// ClientConfig captures the knobs exposed to operators for the report client.
type ClientConfig struct {
	BaseURL         string
	HTTPTimeout     time.Duration
	MaxConnsPerHost int
	MaxIdleConns    int
	IdleConnTimeout time.Duration
}

// Client executes report queries against the SEMrush API. Every call is
// exactly one GET: failed or non-2xx exchanges are returned to the
// domain as-is and never retried here.
type Client struct {
	cfg  ClientConfig
	http *resty.Client
}

var _ semrush.ReportClient = (*Client)(nil)

// NewClient wires the HTTP client with a pooled transport.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cfg.BaseURL = baseURL

	httpTimeout := 30 * time.Second
	if cfg.HTTPTimeout > 0 {
		httpTimeout = cfg.HTTPTimeout
	}
	maxIdleConns := cfg.MaxIdleConns
	if maxIdleConns == 0 {
		maxIdleConns = 100 // match Go default
	}
	maxConnsPerHost := cfg.MaxConnsPerHost
	if maxConnsPerHost == 0 {
		maxConnsPerHost = 50
	}
	idleConnTimeout := cfg.IdleConnTimeout
	if idleConnTimeout == 0 {
		idleConnTimeout = 90 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableKeepAlives:   false,
		ForceAttemptHTTP2:   true,
	}

	httpClient := resty.New().
		SetHeader("User-Agent", "semrush-mcp/1.0").
		SetTimeout(httpTimeout).
		SetRetryCount(0).
		SetTransport(transport)

	return &Client{cfg: cfg, http: httpClient}
}

// FetchReport issues a single GET with the pre-encoded query appended
// verbatim: the report API is sensitive to parameter order and repeated
// bracket keys, which url.Values re-encoding would destroy. The query
// carries the API key, so it stays out of logs.
func (c *Client) FetchReport(ctx context.Context, endpoint semrush.Endpoint, query string) (*semrush.RawReport, error) {
	requestURL := c.cfg.BaseURL + endpoint.Path()
	if query != "" {
		requestURL += "?" + query
	}

	startTime := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		Get(requestURL)
	if err != nil {
		metrics.RecordRemoteRequest(endpoint.String(), "transport_error", time.Since(startTime).Seconds())
		log.Error().Err(err).Str("endpoint", endpoint.String()).Msg("failed to query report API")
		return nil, fmt.Errorf("failed to query report API: %w", err)
	}

	metrics.RecordRemoteRequest(endpoint.String(), strconv.Itoa(resp.StatusCode()), time.Since(startTime).Seconds())
	log.Debug().
		Int("status", resp.StatusCode()).
		Str("endpoint", endpoint.String()).
		Dur("duration", time.Since(startTime)).
		Int("body_bytes", len(resp.Body())).
		Msg("report API response received")

	return &semrush.RawReport{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

// BaseURL reports the effective base URL, mainly for startup logging.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}
