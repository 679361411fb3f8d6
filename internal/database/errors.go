// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"errors"
	"time"
)

// ErrMovieNotFound is returned when no movie matches the given id,
// including ids that are not valid ObjectID hex strings.
var ErrMovieNotFound = errors.New("movie not found")

const defaultDisconnectTimeout = 5 * time.Second
