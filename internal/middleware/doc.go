// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: accepts or generates an X-Request-ID, echoes it on the response
    and seeds the logging context with request and correlation IDs
  - PrometheusMetrics: request count, latency and in-flight instrumentation,
    labelled by the chi route pattern

Both use the func(http.Handler) http.Handler shape so they plug directly into
chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Route patterns rather than raw paths are used as the endpoint label, so
/api/movies/65f1... and /api/movies/65f2... share the series
"/api/movies/{id}" and label cardinality stays bounded.
*/
package middleware
