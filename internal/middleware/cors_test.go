package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(origins []string) http.Handler {
	return CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSAllowedOrigin(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	corsHandler([]string{"http://localhost:5173"}).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}

func TestCORSWildcardWithoutOriginHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	corsHandler([]string{"*"}).ServeHTTP(rec, req)

	if _, present := rec.Header()["Access-Control-Allow-Origin"]; present {
		t.Error("Same-origin request should get no CORS headers")
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")

	corsHandler([]string{"http://localhost:5173"}).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Disallowed origin should get no CORS headers, got %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/topic", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	corsHandler([]string{"*"}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", rec.Code)
	}
}
