// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP layer for Marquee.

It exposes the movie catalog as a JSON CRUD API, relays poster uploads to the
external image host, and optionally serves the single-page client.

Endpoints:

	GET    /api/movies              list, filtered by ?search=&genre=&rating=
	GET    /api/movies/count        number of movies matching the same filters
	GET    /api/movies/{id}         one movie
	POST   /api/movies              create (201 + Location)
	PUT    /api/movies/{id}         full replace
	DELETE /api/movies/{id}         hard delete
	POST   /api/upload              multipart upload, answers {"url": "..."}
	GET    /api/health/live         liveness probe
	GET    /api/health/ready        readiness probe (pings MongoDB)
	GET    /metrics                 Prometheus exposition

Status Mapping:

Handlers are the only place errors become status codes:

  - database.ErrMovieNotFound                       404 {"message":"Movie not found"}
  - *validation.RequestValidationError             400 {"message":..., "errors":{field:[...]}}
  - *upload.UpstreamError                          upstream status {"message":"Upload failed"}
  - upload.ErrNoFile                               400
  - upload.ErrNoImageURL                           500 with a specific message
  - anything else                                  logged, 500 {"message":"Internal server error"}

Error detail is logged with the request's correlation fields and never
written to the response body.

Middleware Stack (outermost first):

	RequestID -> RealIP -> AccessLog -> Recoverer -> CORS -> PrometheusMetrics
	/api/*: APISecurityHeaders -> Compress

Usage Example:

	handler := api.NewHandler(db.Movies(), relay, db)
	router := api.NewRouter(handler, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
