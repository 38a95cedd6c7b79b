package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func sendFrom(handler http.Handler, remote, user string) int {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remote
	if user != "" {
		req.Header.Set(UserIDHeader, user)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_AllowsWithinLimit(t *testing.T) {
	handler := RateLimitMiddleware(5)(okHandler())

	for i := 0; i < 5; i++ {
		if code := sendFrom(handler, "10.0.0.1:4000", ""); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
}

func TestRateLimitMiddleware_BlocksOverLimit(t *testing.T) {
	handler := RateLimitMiddleware(3)(okHandler())

	for i := 0; i < 3; i++ {
		sendFrom(handler, "10.0.0.1:4000", "")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimitMiddleware_IgnoresUserHeader(t *testing.T) {
	handler := RateLimitMiddleware(1)(okHandler())

	allowed := 0
	for i := 0; i < 50; i++ {
		if sendFrom(handler, "10.0.0.1:4000", fmt.Sprintf("u%d", i)) == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 1, allowed, "rotating X-User-ID must not reset the limit")
}

func TestRateLimitMiddleware_KeysByClientHost(t *testing.T) {
	handler := RateLimitMiddleware(1)(okHandler())

	assert.Equal(t, http.StatusOK, sendFrom(handler, "10.0.0.1:4000", ""))
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(handler, "10.0.0.1:4001", ""), "new port, same host")
	assert.Equal(t, http.StatusOK, sendFrom(handler, "10.0.0.2:4000", ""))
}

func TestRateLimiterSweepsIdleKeys(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		assert.True(t, rl.allow(fmt.Sprintf("10.0.%d.1", i), start))
	}
	assert.Len(t, rl.requests, 100)

	assert.True(t, rl.allow("10.9.9.9", start.Add(2*time.Minute)))
	assert.Len(t, rl.requests, 1, "expired keys must be dropped")

	assert.True(t, rl.allow("10.9.9.9", start.Add(2*time.Minute+time.Second)))
	assert.False(t, rl.allow("10.9.9.9", start.Add(2*time.Minute+2*time.Second)))
}

func TestClientKey(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientKey("10.0.0.1:4000"))
	assert.Equal(t, "::1", clientKey("[::1]:4000"))
	assert.Equal(t, "203.0.113.9", clientKey("203.0.113.9"))
}

func TestAdminAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"no token configured", "", "", http.StatusOK},
		{"valid bearer", "s3cret", "Bearer s3cret", http.StatusOK},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"wrong token", "s3cret", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuthMiddleware(tt.token)(okHandler())
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	called := false
	handler := RequestLogger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called, "inner handler was not called")
	assert.Equal(t, http.StatusTeapot, w.Code)
}
