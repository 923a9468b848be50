package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterExhaustsBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 2, nil)
	handler := limiter.Handler(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", resp.Code)
	}

	// A different client has its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for second client, got %d", resp.Code)
	}
}

func TestRateLimiterCleanupBoundsClientMap(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)

	for i := 0; i < maxTrackedClients/2; i++ {
		rl.limiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	rl.Cleanup()
	if got := len(rl.limiters); got != maxTrackedClients/2 {
		t.Fatalf("cleanup below the cap must keep limiters, got %d", got)
	}

	for i := 0; i <= maxTrackedClients; i++ {
		rl.limiter(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
	}
	rl.Cleanup()
	if got := len(rl.limiters); got != 0 {
		t.Fatalf("cleanup past the cap must reset limiters, got %d", got)
	}
}
