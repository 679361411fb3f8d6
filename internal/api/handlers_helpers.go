// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// Response messages. Clients match on some of these, keep them stable.
const (
	msgInvalidBody      = "Invalid request body"
	msgValidationFailed = "One or more validation errors occurred."
	msgMovieNotFound    = "Movie not found"
	msgMovieDeleted     = "Movie deleted successfully"
	msgInternalError    = "Internal server error"
	msgNoFile           = "No file uploaded"
	msgUploadFailed     = "Upload failed"
	msgNoImageURL       = "Failed to get image URL from upload service"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
)

// maxJSONBodyBytes limits movie request bodies.
const maxJSONBodyBytes = 1 << 20

// errEmptyBody is returned by decodeJSON for a request without a body.
var errEmptyBody = errors.New("empty request body")

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends a {"message": ...} body with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.MessageResponse{Message: message})
}

// respondValidationError sends the 400 field-error body.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
		Message: msgValidationFailed,
		Errors:  verr.FieldErrors(),
	})
}

// respondServerError logs err with the operation (and movie id, if any) and
// answers with the generic 500 body.
func respondServerError(w http.ResponseWriter, r *http.Request, operation, movieID string, err error) {
	event := logging.Ctx(r.Context()).Error().Err(err).Str("operation", operation)
	if movieID != "" {
		event = event.Str("movie_id", sanitizeLogValue(movieID))
	}
	event.Msg("Request failed")

	respondError(w, http.StatusInternalServerError, msgInternalError)
}

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// parseMovieFilter reads ?search=&genre=&rating= into a filter.
// A rating that is not an integer is a validation failure on "rating".
func parseMovieFilter(r *http.Request) (models.MovieFilter, *validation.RequestValidationError) {
	q := r.URL.Query()
	filter := models.MovieFilter{
		Search: q.Get("search"),
		Genre:  q.Get("genre"),
	}

	if raw := strings.TrimSpace(q.Get("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return filter, validation.NewFieldError("rating",
				fmt.Sprintf("The value '%s' is not valid for rating.", raw))
		}
		filter.Rating = &rating
	}

	return filter, nil
}
