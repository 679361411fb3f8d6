// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/logging"
)

const defaultIndexTimeout = 30 * time.Second

// IndexEnsurer creates the indexes a collection needs.
// Satisfied by *database.MovieStore.
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// IndexService builds the catalog indexes once at startup.
//
// Index creation is not required for correctness, only for list ordering
// speed, so the API starts serving immediately and this service keeps
// retrying under supervisor backoff while MongoDB is unavailable. After a
// successful run it returns suture.ErrDoNotRestart and leaves the tree.
type IndexService struct {
	ensurer IndexEnsurer
	timeout time.Duration
	name    string
}

// NewIndexService wraps ensurer. Non-positive timeouts fall back to 30s.
func NewIndexService(ensurer IndexEnsurer, timeout time.Duration) *IndexService {
	if timeout <= 0 {
		timeout = defaultIndexTimeout
	}
	return &IndexService{
		ensurer: ensurer,
		timeout: timeout,
		name:    "index-maintenance",
	}
}

// Serve implements suture.Service.
func (s *IndexService) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.ensurer.EnsureIndexes(runCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ensure indexes: %w", err)
	}

	logging.Info().Str("service", s.name).Msg("Catalog indexes ready")
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer.
func (s *IndexService) String() string {
	return s.name
}
