package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Quentin-Piot/posts-service/pkg/logger"
)

func TestRequestLoggerSetsTraceID(t *testing.T) {
	log := logger.NewDefault("test")
	log.SetOutput(io.Discard)
	handler := RequestLogger(log)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Header().Get("X-Trace-ID") == "" {
		t.Fatalf("expected generated trace id header")
	}
}

func TestRequestLoggerPropagatesTraceID(t *testing.T) {
	log := logger.NewDefault("test")
	log.SetOutput(io.Discard)
	handler := RequestLogger(log)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Fatalf("expected propagated trace id, got %q", got)
	}
}
