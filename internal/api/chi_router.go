// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/middleware"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a router for handler using the server and security settings in cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddlewareFromOrigins(cfg.Security.CORSOrigins),
		staticDir:     cfg.Server.StaticDir,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Route("/health", func(r chi.Router) {
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.ListMovies)
			r.Post("/", router.handler.CreateMovie)
			r.Get("/count", router.handler.CountMovies)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", router.handler.GetMovie)
				r.Put("/", router.handler.UpdateMovie)
				r.Delete("/", router.handler.DeleteMovie)
			})
		})

		r.Post("/upload", router.handler.UploadImage)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Files & SPA
	// ========================
	// Must be last - catches all unmatched routes
	if router.staticDir != "" {
		r.Get("/*", router.serveStaticOrIndex)
	}

	return r
}

// serveStaticOrIndex serves a file from the static directory, falling back to
// index.html so client-side routes resolve.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	if urlPath != "/" && router.fileExists(urlPath) {
		setStaticCacheControl(w, urlPath)
		http.ServeFile(w, r, filepath.Join(router.staticDir, filepath.FromSlash(urlPath)))
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, filepath.Join(router.staticDir, "index.html"))
}

// fileExists reports whether urlPath names a regular file under the static directory.
func (router *Router) fileExists(urlPath string) bool {
	f, err := http.Dir(router.staticDir).Open(urlPath)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode().IsRegular()
}

func setStaticCacheControl(w http.ResponseWriter, urlPath string) {
	switch strings.ToLower(filepath.Ext(urlPath)) {
	case ".js", ".css":
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case ".png", ".svg", ".jpg", ".jpeg", ".webp", ".ico":
		w.Header().Set("Cache-Control", "public, max-age=604800")
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
}

// StaticDirUsable reports whether dir exists and contains index.html.
func StaticDirUsable(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil && info.Mode().IsRegular()
}
