// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/upload"
)

// MovieStore is the record store the catalog handlers depend on.
// *database.MovieStore satisfies it.
type MovieStore interface {
	List(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	Count(ctx context.Context, filter models.MovieFilter) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Update(ctx context.Context, id string, movie *models.Movie) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Uploader forwards one file to the image host. *upload.Relay satisfies it.
type Uploader interface {
	Upload(ctx context.Context, f upload.File) (string, error)
}

// Pinger reports database reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_movies.go: catalog CRUD
//   - handlers_upload.go: upload relay endpoint
//   - handlers_health.go: liveness and readiness probes
//   - handlers_helpers.go: response and request helpers
type Handler struct {
	movies   MovieStore
	uploader Uploader
	db       Pinger
}

// NewHandler creates a handler. db may be nil, in which case readiness
// reports the service as not ready.
func NewHandler(movies MovieStore, uploader Uploader, db Pinger) *Handler {
	return &Handler{
		movies:   movies,
		uploader: uploader,
		db:       db,
	}
}
