// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
)

func TestRouter_RoutesRegistered(t *testing.T) {
	t.Parallel()

	movie := seedMovie("Heat", nil, baseTime)
	h := newTestServer(t, newFakeStore(movie), &fakeUploader{})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/movies", "", http.StatusOK},
		{http.MethodGet, "/api/movies/", "", http.StatusOK},
		{http.MethodGet, "/api/movies/count", "", http.StatusOK},
		{http.MethodGet, "/api/movies/" + movie.ID.Hex(), "", http.StatusOK},
		{http.MethodPost, "/api/movies", `{"title":"Ran"}`, http.StatusCreated},
		{http.MethodPut, "/api/movies/" + movie.ID.Hex(), `{"title":"Heat 2"}`, http.StatusOK},
		{http.MethodGet, "/api/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/health/ready", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPatch, "/api/movies", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/upload", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodGet, "/no-static-dir-configured", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := doJSON(t, h, tt.method, tt.path, tt.body)
		if rec.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, rec.Code)
		}
	}
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, newTestServer(t, newFakeStore(), nil), http.MethodGet, "/api/nope", "")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	if got := decodeBody[models.MessageResponse](t, rec); got.Message != msgNotFound {
		t.Errorf("Unexpected message %q", got.Message)
	}
}

func TestRouter_MiddlewareHeaders(t *testing.T) {
	t.Parallel()

	rec := doJSON(t, newTestServer(t, newFakeStore(), nil), http.MethodGet, "/api/movies", "")

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("Expected nosniff, got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Expected no-store, got %q", got)
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	h := newTestServer(t, newFakeStore(), nil)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodOptions, "/api/movies", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected allowed origin, got %q", got)
		}
	})

	t.Run("other origin is not allowed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no CORS header, got %q", got)
		}
	})
}

func TestRouter_StaticFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>marquee</html>"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !StaticDirUsable(dir) {
		t.Fatal("StaticDirUsable() = false for a directory with index.html")
	}
	if StaticDirUsable(t.TempDir()) {
		t.Error("StaticDirUsable() = true for an empty directory")
	}

	cfg := &config.Config{Server: config.ServerConfig{StaticDir: dir}}
	h := NewRouter(NewHandler(newFakeStore(), nil, fakePinger{}), cfg).SetupChi()

	tests := []struct {
		path     string
		contains string
		cache    string
	}{
		{"/", "marquee", "no-cache"},
		{"/movies/65f1c2a9e4b0a1b2c3d4e5f6/edit", "marquee", "no-cache"},
		{"/assets/app.js", "console.log", "public, max-age=31536000, immutable"},
		{"/assets", "marquee", "no-cache"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", tt.path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.contains) {
			t.Errorf("GET %s: body %q does not contain %q", tt.path, rec.Body.String(), tt.contains)
		}
		if got := rec.Header().Get("Cache-Control"); got != tt.cache {
			t.Errorf("GET %s: Cache-Control = %q, want %q", tt.path, got, tt.cache)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/not-a-route", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("API paths must not fall back to index.html, got %d", rec.Code)
	}
}

func TestAPISecurityHeaders_HSTS(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("Expected HSTS behind a TLS-terminating proxy")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("Expected no HSTS over plain HTTP")
	}
}
