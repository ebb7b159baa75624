package mcpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mathmcp/mathmcp/pkg/config"
	"github.com/mathmcp/mathmcp/pkg/mcpserver"
)

func TestHealthEndpoint(t *testing.T) {
	srv := mcpserver.New(nil)
	handler := srv.HTTPHandler()

	// Before MarkReady the probe reports starting.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("health before ready: status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"starting"`) {
		t.Errorf("health before ready: body = %q", rec.Body.String())
	}

	srv.MarkReady()

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health after ready: status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("health after ready: body = %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("health Content-Type = %q", ct)
	}
}

func TestHealthRejectsNonGet(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health status = %d, want 405", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Mcp-Session-Id") {
		t.Errorf("Allow-Headers = %q, want Mcp-Session-Id included", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q", got)
	}
}

func TestCORSSkippedForNonBrowserClients(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for request without Origin, want empty", got)
	}
	if got := rec.Header().Values("Vary"); len(got) == 0 || got[0] != "Origin" {
		t.Errorf("Vary = %v, want Origin", got)
	}
}

func TestRequestIDEcho(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	// Generated when absent.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id not generated")
	}

	// Preserved when supplied.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "upstream-id-42")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "upstream-id-42" {
		t.Errorf("X-Request-Id = %q, want upstream-id-42", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics = true
	srv := mcpserver.New(cfg)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/metrics status = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpointDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics = false
	srv := mcpserver.New(cfg)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	// Falls through to the streamable transport mount, which is not a
	// Prometheus endpoint; anything but a scrape payload is acceptable.
	if strings.Contains(rec.Body.String(), "mathmcp_tool_calls_total") {
		t.Error("/metrics served scrape data with metrics disabled")
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimit = 1
	cfg.RateBurst = 1
	srv := mcpserver.New(cfg)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	// First request consumes the burst.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rec.Code == http.StatusTooManyRequests {
		t.Fatalf("first request rate limited")
	}

	// Second request inside the same second is rejected.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}

	// Health probes bypass the limiter.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code == http.StatusTooManyRequests {
		t.Error("/health was rate limited")
	}
}

func TestRateLimitDefaultHeadroom(t *testing.T) {
	srv := mcpserver.New(nil)
	srv.MarkReady()
	handler := srv.HTTPHandler()

	// The default burst is large enough that a modest request spike is
	// never rejected.
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code == http.StatusTooManyRequests {
			t.Fatalf("request %d rate limited under default config", i)
		}
	}
}
