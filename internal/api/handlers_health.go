// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// readyPingTimeout bounds the MongoDB ping made by the readiness probe.
const readyPingTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if MongoDB answers a ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "unavailable",
			Error:  "database not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "unavailable",
			Error:  "database unreachable",
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
