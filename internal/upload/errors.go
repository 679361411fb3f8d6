// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package upload

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFile is returned when the upload carries no bytes.
	ErrNoFile = errors.New("no file uploaded")

	// ErrNoImageURL is returned when the image host response has no path.
	ErrNoImageURL = errors.New("upload service returned no image path")

	// ErrNotConfigured is returned when no upload URL is configured.
	ErrNotConfigured = errors.New("upload URL not configured")
)

// UpstreamError reports a non-2xx answer from the image host.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upload service responded with status %d", e.StatusCode)
}
