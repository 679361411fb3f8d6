// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee serves a movie catalog stored in MongoDB as a JSON API and relays
poster uploads to an external image host.

# Process Layout

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── IndexService (exits after the first successful build)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Startup order:

 1. Configuration (koanf: defaults, optional YAML file, environment)
 2. Logging (zerolog, with a slog bridge for the supervisor)
 3. MongoDB connection and ping; failure here exits the process
 4. Upload relay, API handlers, chi router
 5. Supervisor tree, run until SIGINT or SIGTERM

When a config file is in use it is watched, and changes to logging.level
take effect without a restart.

# Endpoints

	GET    /api/movies            list (search, genre, rating filters)
	GET    /api/movies/count      count with the same filters
	GET    /api/movies/{id}       fetch one
	POST   /api/movies            create
	PUT    /api/movies/{id}       replace
	DELETE /api/movies/{id}       delete
	POST   /api/upload            relay multipart "file" to the image host
	GET    /api/health/live       liveness
	GET    /api/health/ready      readiness (MongoDB ping)
	GET    /metrics               Prometheus

# Configuration

Common environment variables:

	HTTP_HOST, HTTP_PORT        listen address (default 0.0.0.0:6124)
	MONGODB_URI                 connection string
	MONGODB_DATABASE            database name (default marquee)
	UPLOAD_URL, UPLOAD_TOKEN    image host endpoint and bearer token
	CORS_ORIGINS                comma-separated allowed origins
	STATIC_DIR                  optional single-page client to serve
	LOG_LEVEL, LOG_FORMAT       zerolog level and json|console
	CONFIG_PATH                 explicit YAML config file

See internal/config for the full list.
*/
package main
