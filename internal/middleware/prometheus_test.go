// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

func requestCount(method, endpoint, status string) float64 {
	return testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(method, endpoint, status))
}

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	t.Run("passes status through", func(t *testing.T) {
		t.Parallel()

		statusCodes := []int{
			http.StatusOK,
			http.StatusCreated,
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusInternalServerError,
		}

		for _, code := range statusCodes {
			t.Run(http.StatusText(code), func(t *testing.T) {
				handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
				}))

				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

				if rec.Code != code {
					t.Errorf("Expected status %d, got %d", code, rec.Code)
				}
			})
		}
	})

	t.Run("labels by route pattern", func(t *testing.T) {
		t.Parallel()

		r := chi.NewRouter()
		r.Use(PrometheusMetrics)
		r.Get("/pattern-test/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		before := requestCount(http.MethodGet, "/pattern-test/{id}", "204")

		for _, id := range []string{"a", "b", "c"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pattern-test/"+id, nil))
		}

		if got := requestCount(http.MethodGet, "/pattern-test/{id}", "204") - before; got != 3 {
			t.Errorf("Expected 3 requests under the route pattern, got %v", got)
		}
	})

	t.Run("unmatched routes share one label", func(t *testing.T) {
		t.Parallel()

		r := chi.NewRouter()
		r.Use(PrometheusMetrics)
		r.Get("/known", func(w http.ResponseWriter, r *http.Request) {})

		before := requestCount(http.MethodGet, unmatchedRoute, "404")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown/deadbeef", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", rec.Code)
		}
		if got := requestCount(http.MethodGet, unmatchedRoute, "404") - before; got < 1 {
			t.Errorf("Expected unmatched request to be counted, got %v", got)
		}
	})

	t.Run("defaults to 200 when WriteHeader not called", func(t *testing.T) {
		t.Parallel()

		r := chi.NewRouter()
		r.Use(PrometheusMetrics)
		r.Get("/implicit-ok", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Hello")) //nolint:errcheck
		})

		before := requestCount(http.MethodGet, "/implicit-ok", "200")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/implicit-ok", nil))

		if got := requestCount(http.MethodGet, "/implicit-ok", "200") - before; got != 1 {
			t.Errorf("Expected one 200 request, got %v", got)
		}
	})
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("captures first status code", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusTeapot)
		rw.WriteHeader(http.StatusInternalServerError)

		if rw.statusCode != http.StatusTeapot {
			t.Errorf("Expected status %d, got %d", http.StatusTeapot, rw.statusCode)
		}
	})

	t.Run("write after implicit header keeps 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		if _, err := rw.Write([]byte("body")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		rw.WriteHeader(http.StatusInternalServerError)

		if rw.statusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rw.statusCode)
		}
	})

	t.Run("unwrap returns underlying writer", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		rw := &metricsResponseWriter{ResponseWriter: rec}

		if rw.Unwrap() != rec {
			t.Error("Unwrap() should return the wrapped writer")
		}
	})
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Errorf("routePattern() = %q, want %q", got, unmatchedRoute)
	}
}
