// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the data structures shared by the store, the API and
the upload relay.

Movie carries the one explicit schema for a catalog record: json tags for the
HTTP shape, bson tags for the MongoDB document and validate tags for the record
invariants (title present and not blank, rating within 1..5 when present).
MovieInput is the request body for create and update; server-owned fields
(id, createdAt, updatedAt) are never read from clients.

Response bodies (MessageResponse, ValidationErrorResponse, URLResponse,
CountResponse, HealthResponse) match what the browser client parses:

	import "github.com/tomtom215/marquee/internal/models"

	movie := (&models.MovieInput{Title: "Heat"}).ToMovie()
*/
package models
