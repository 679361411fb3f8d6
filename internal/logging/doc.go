// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides the zerolog-based structured logger used across Marquee.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("collection", "movies").Msg("Indexes ensured")
//	logging.Ctx(r.Context()).Error().Err(err).Str("operation", "update_movie").Msg("Store failure")
//
// # Configuration
//
// Environment Variables (resolved by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The API layer stores a request ID and a short correlation ID in each request
// context. Ctx and CtxWith attach both to every event, so all lines written
// while serving one request can be grouped together:
//
//	{"level":"error","request_id":"5b0c...","correlation_id":"9f1e2a3b","operation":"get_movie","movie_id":"65f...","message":"Failed to fetch movie"}
//
// # slog Adapter
//
// NewSlogLogger returns an *slog.Logger that writes through zerolog. The
// supervisor tree hands it to sutureslog so service restarts and failures
// appear in the same log stream.
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logging.SetLogger(logger)
package logging
