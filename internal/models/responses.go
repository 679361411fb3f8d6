// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// MessageResponse is the body of confirmations and of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse lists the messages for each failing field.
//
//	{"message": "One or more validation errors occurred.", "errors": {"title": ["title is required"]}}
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// URLResponse is returned by a successful upload.
type URLResponse struct {
	URL string `json:"url"`
}

// CountResponse is returned by the count endpoint.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
