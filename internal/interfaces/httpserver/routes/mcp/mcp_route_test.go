package mcp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"semrush-mcp/internal/domain/credentials"
	"semrush-mcp/internal/domain/semrush"
	"semrush-mcp/internal/infrastructure/toolcatalog"
)

func TestMCPMethodGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantNext   bool
	}{
		{name: "tools list allowed", body: `{"jsonrpc":"2.0","method":"tools/list","id":1}`, wantStatus: http.StatusOK, wantNext: true},
		{name: "tools call allowed", body: `{"jsonrpc":"2.0","method":"tools/call","id":2}`, wantStatus: http.StatusOK, wantNext: true},
		{name: "unsupported method", body: `{"jsonrpc":"2.0","method":"resources/list","id":3}`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
		{name: "invalid json", body: "{", wantStatus: http.StatusBadRequest},
		{name: "missing method", body: `{"jsonrpc":"2.0","id":4}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			var reachedNext bool
			router.POST("/mcp", MCPMethodGuard(allowedMCPMethods), func(c *gin.Context) {
				reachedNext = true
				c.Status(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(tt.body))
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if reachedNext != tt.wantNext {
				t.Errorf("reached handler = %v, want %v", reachedNext, tt.wantNext)
			}
		})
	}
}

func TestMCPMethodGuardPreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	var seenBody string
	router.POST("/mcp", MCPMethodGuard(allowedMCPMethods), func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		seenBody = string(data)
		c.Status(http.StatusOK)
	})

	body := `{"jsonrpc":"2.0","method":"initialize","id":1}`
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	router.ServeHTTP(recorder, req)

	if seenBody != body {
		t.Errorf("downstream body = %q, want original payload", seenBody)
	}
}

func TestRegisterRouterMountsMCPEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := semrush.NewReportService(nil, credentials.NewResolver(nil))
	route := NewMCPRoute(NewReportMCP(service, &toolcatalog.Catalog{}))

	router := gin.New()
	route.RegisterRouter(router.Group("/v1"))

	for _, r := range router.Routes() {
		if r.Method == http.MethodPost && r.Path == "/v1/mcp" {
			return
		}
	}
	t.Fatal("POST /v1/mcp not registered")
}
