package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kozaktomas/card-grid/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("CARDGRID_PRESETS_FILE", "")
	t.Setenv("WEB_ALLOWED_ORIGINS", "https://print.example.com")
	return NewServer(config.Load(), "127.0.0.1", 0)
}

func TestServer_Routes(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/api/v1/health", "", http.StatusOK},
		{"GET", "/api/v1/presets", "", http.StatusOK},
		{"POST", "/api/v1/layout", `{"columns":2,"rows":2}`, http.StatusOK},
		{"GET", "/api/v1/layout", "", http.StatusMethodNotAllowed},
		{"POST", "/api/v1/render", "", http.StatusBadRequest},
		{"GET", "/api/v1/unknown", "", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			recorder := httptest.NewRecorder()

			s.Router().ServeHTTP(recorder, req)

			if recorder.Code != tc.status {
				t.Errorf("expected status %d, got %d: %s", tc.status, recorder.Code, recorder.Body.String())
			}
		})
	}
}

func TestServer_CORSFromConfig(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	req.Header.Set("Origin", "https://print.example.com")
	recorder := httptest.NewRecorder()

	s.Router().ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://print.example.com" {
		t.Errorf("expected configured origin to be allowed, got %q", got)
	}
}

func TestServer_Addr(t *testing.T) {
	s := NewServer(&config.Config{}, "localhost", 9090)
	if s.Addr() != "localhost:9090" {
		t.Errorf("expected localhost:9090, got %s", s.Addr())
	}
}
