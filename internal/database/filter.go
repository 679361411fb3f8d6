// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/models"
)

// buildMovieFilter translates list predicates into a MongoDB filter document.
//
// Predicates combine with AND:
//   - Search: case-insensitive substring of title
//   - Genre: case-insensitive substring of genre, skipped when blank or "All"
//   - Rating: exact match
//
// No predicates yields an empty document (match all), a single predicate is
// returned as-is, and two or more are wrapped in $and:
//
//	{"$and": [{"title": /heat/i}, {"rating": 4}]}
//
// User text is escaped with regexp.QuoteMeta so it is matched literally.
func buildMovieFilter(f models.MovieFilter) bson.D {
	predicates := make([]bson.D, 0, 3)

	if f.Search != "" {
		predicates = append(predicates, bson.D{{Key: "title", Value: containsFold(f.Search)}})
	}

	if f.HasGenre() {
		predicates = append(predicates, bson.D{{Key: "genre", Value: containsFold(f.Genre)}})
	}

	if f.Rating != nil {
		predicates = append(predicates, bson.D{{Key: "rating", Value: *f.Rating}})
	}

	switch len(predicates) {
	case 0:
		return bson.D{}
	case 1:
		return predicates[0]
	default:
		and := make(bson.A, len(predicates))
		for i, p := range predicates {
			and[i] = p
		}
		return bson.D{{Key: "$and", Value: and}}
	}
}

// containsFold matches text anywhere in the field, ignoring case.
func containsFold(text string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}
