package mcp

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"semrush-mcp/internal/domain/credentials"
	"semrush-mcp/internal/domain/semrush"
	"semrush-mcp/internal/infrastructure/metrics"
	"semrush-mcp/internal/infrastructure/toolcatalog"
)

// ReportMCP registers one MCP tool per report definition. The tool
// names, argument schemas and descriptions all derive from the report
// catalog; the yaml override catalog can disable individual tools or
// replace their descriptions.
type ReportMCP struct {
	reportService *semrush.ReportService
	catalog       *toolcatalog.Catalog
}

// NewReportMCP creates a new report MCP handler.
func NewReportMCP(reportService *semrush.ReportService, catalog *toolcatalog.Catalog) *ReportMCP {
	return &ReportMCP{
		reportService: reportService,
		catalog:       catalog,
	}
}

// RegisterTools registers every enabled report definition with the MCP server.
func (r *ReportMCP) RegisterTools(server *mcp.Server) {
	registered := 0
	for _, def := range semrush.Definitions() {
		if !r.catalog.Enabled(def.Name) {
			log.Info().Str("tool", def.Name).Msg("Report tool disabled via catalog overrides")
			continue
		}
		r.registerReport(server, def)
		registered++
	}
	log.Info().Int("count", registered).Msg("Registered SEMrush report tools")
}

func (r *ReportMCP) registerReport(server *mcp.Server, def semrush.Definition) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        def.Name,
		Description: r.catalog.Description(def.Name, def.Doc),
		InputSchema: inputSchemaFor(def),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, any, error) {
		startTime := time.Now()

		log.Info().
			Str("tool", def.Name).
			Str("endpoint", def.Endpoint.String()).
			Msg("MCP tool call received")

		args := input
		if args == nil {
			args = make(map[string]any)
		}

		report, err := r.reportService.Fetch(ctx, def.Name, args)
		if err != nil {
			return r.handleFetchError(def, err, startTime)
		}

		metrics.RecordReportFetch(def.Name, def.Endpoint.String(), strconv.Itoa(report.StatusCode), time.Since(startTime).Seconds())
		log.Debug().
			Str("tool", def.Name).
			Int("status", report.StatusCode).
			Dur("duration", time.Since(startTime)).
			Msg("Report fetched")

		return nil, report, nil
	})
}

// handleFetchError maps domain errors to tool results. Argument and
// credential problems are reported in-band so the caller can correct
// the call; anything else surfaces as a protocol error.
func (r *ReportMCP) handleFetchError(def semrush.Definition, err error, startTime time.Time) (*mcp.CallToolResult, any, error) {
	elapsed := time.Since(startTime).Seconds()

	var missingErr *semrush.MissingArgumentError
	if errors.As(err, &missingErr) {
		metrics.RecordReportFetch(def.Name, def.Endpoint.String(), "invalid_arguments", elapsed)
		log.Debug().Str("tool", def.Name).Str("argument", missingErr.Argument).Msg("Rejected tool call arguments")
		return errorResult(err), nil, nil
	}

	if errors.Is(err, credentials.ErrIntegrationUnavailable) {
		metrics.RecordReportFetch(def.Name, def.Endpoint.String(), "integration_unavailable", elapsed)
		log.Warn().Str("tool", def.Name).Msg("No credential source configured for tool call")
		return errorResult(err), nil, nil
	}

	var remoteErr *semrush.RemoteRequestError
	if errors.As(err, &remoteErr) {
		metrics.RecordReportFetch(def.Name, def.Endpoint.String(), strconv.Itoa(remoteErr.StatusCode), elapsed)
		log.Warn().
			Str("tool", def.Name).
			Int("status", remoteErr.StatusCode).
			Msg("Report API rejected the request")
		return errorResult(err), nil, nil
	}

	metrics.RecordReportFetch(def.Name, def.Endpoint.String(), "error", elapsed)
	log.Error().Err(err).Str("tool", def.Name).Msg("Report fetch failed")
	return nil, nil, err
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

// inputSchemaFor builds the JSON schema advertised for a report
// definition from its argument table.
func inputSchemaFor(def semrush.Definition) map[string]any {
	properties := make(map[string]any, len(def.Required)+len(def.Optional)+1)
	required := make([]string, 0, len(def.Required))

	for _, field := range def.Required {
		properties[field.Name] = fieldSchema(field)
		required = append(required, field.Name)
	}

	if def.Database {
		properties["database"] = map[string]any{
			"type":        "string",
			"description": "Regional database to query, e.g. us, uk or de.",
			"default":     semrush.DefaultDatabase,
		}
	}

	for _, field := range def.Optional {
		properties[field.Name] = fieldSchema(field)
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func fieldSchema(field semrush.Field) map[string]any {
	switch field.Kind {
	case semrush.KindInt:
		return map[string]any{
			"type":        "integer",
			"description": field.Doc,
		}
	case semrush.KindFlag:
		return map[string]any{
			"type":        "boolean",
			"description": field.Doc,
		}
	case semrush.KindStrings:
		schema := map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": field.Doc,
		}
		if field.MaxItems > 0 {
			schema["maxItems"] = field.MaxItems
		}
		return schema
	default:
		return map[string]any{
			"type":        "string",
			"description": field.Doc,
		}
	}
}
