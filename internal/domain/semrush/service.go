package semrush

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"semrush-mcp/internal/domain/credentials"
)

// ReportClient is the transport used to execute report queries. The
// query string is passed pre-encoded because parameter order and
// repeated bracket keys are significant to the remote API. A RawReport
// is returned for every completed HTTP exchange regardless of status
// code; errors are transport failures only.
type ReportClient interface {
	FetchReport(ctx context.Context, endpoint Endpoint, query string) (*RawReport, error)
}

// RawReport is one HTTP response from the report API.
type RawReport struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Report is a normalized report response. Data carries the decoded
// body when the remote returned JSON; Raw carries the body text for
// everything else (the analytics endpoint answers CSV-style text).
type Report struct {
	Type       string `json:"type"`
	StatusCode int    `json:"status_code"`
	Data       any    `json:"data,omitempty"`
	Raw        string `json:"raw,omitempty"`
}

// ReportService executes report requests: validate, resolve the API
// key, assemble the ordered parameter set, issue a single GET, and
// normalize the response. Each call is stateless end to end; the
// resolver cache is the only state shared across calls.
type ReportService struct {
	client   ReportClient
	resolver *credentials.Resolver
}

// NewReportService creates a new report service.
func NewReportService(client ReportClient, resolver *credentials.Resolver) *ReportService {
	return &ReportService{
		client:   client,
		resolver: resolver,
	}
}

// Fetch executes the named report with the given arguments.
func (s *ReportService) Fetch(ctx context.Context, name string, args map[string]any) (*Report, error) {
	def, ok := DefinitionByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", name)
	}

	reportArgs, err := def.BuildArgs(args)
	if err != nil {
		return nil, err
	}

	apiKey, err := s.resolver.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.FetchReport(ctx, def.Endpoint, reportArgs.Params(apiKey).Encode())
	if err != nil {
		return nil, err
	}

	return normalize(def.Name, raw)
}

// normalize maps a raw HTTP response to a Report. Non-2xx statuses
// become RemoteRequestError with the body preserved verbatim. JSON
// bodies are decoded; a body that fails to decode despite its content
// type falls back to raw text.
func normalize(name string, raw *RawReport) (*Report, error) {
	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		return nil, &RemoteRequestError{StatusCode: raw.StatusCode, Body: string(raw.Body)}
	}

	report := &Report{Type: name, StatusCode: raw.StatusCode}
	if isJSONContentType(raw.ContentType) {
		var data any
		if err := json.Unmarshal(raw.Body, &data); err == nil {
			report.Data = data
			return report, nil
		}
	}
	report.Raw = string(raw.Body)
	return report, nil
}

func isJSONContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}
