// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use with
// WithRequiredStructEnabled, reports fields by their JSON names and registers
// a notblank check for strings that must carry visible text.
//
// # Quick Start
//
//	movie := input.ToMovie()
//	if verr := validation.ValidateStruct(movie); verr != nil {
//	    // {"title": ["title is required"]}
//	    fields := verr.FieldErrors()
//	    ...
//	}
//
// # Messages
//
// Messages are built from the failing tag:
//   - required: "title is required"
//   - notblank: "title must not be blank"
//   - min/max on numbers: "rating must be at least 1", "rating must be at most 5"
//   - min/max on strings: "... must be at least N characters"
package validation
