package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(recorder, req)

	if seen == "" {
		t.Fatal("expected a generated request id in the gin context")
	}
	if got := recorder.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("response X-Request-Id = %q, want %q", got, seen)
	}
}

func TestRequestIDHonorsInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())

	var fromRequestCtx string
	router.GET("/", func(c *gin.Context) {
		if id, ok := c.Request.Context().Value("requestID").(string); ok {
			fromRequestCtx = id
		}
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "inbound-id-123")
	router.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("X-Request-Id"); got != "inbound-id-123" {
		t.Errorf("response X-Request-Id = %q, want inbound value", got)
	}
	if fromRequestCtx != "inbound-id-123" {
		t.Errorf("request context requestID = %q, want inbound value", fromRequestCtx)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS())
	router.POST("/v1/mcp", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/mcp", nil)
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", recorder.Code, http.StatusNoContent)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
