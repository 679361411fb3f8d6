// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GenreAll is the genre value clients send to mean "no genre filter".
const GenreAll = "All"

// Movie is a catalog record as stored in MongoDB and returned by the API.
//
// The JSON and BSON field names are fixed here and nowhere else:
//
//	{
//	  "id": "65f1c2a9e4b0a1b2c3d4e5f6",
//	  "title": "Alien",
//	  "genre": "Horror",
//	  "rating": 5,
//	  "posterImage": "https://images.example.com/alien.jpg",
//	  "createdAt": "2026-03-01T12:00:00.000Z",
//	  "updatedAt": "2026-03-01T12:00:00.000Z"
//	}
//
// ID marshals to JSON as its hex string.
type Movie struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title" validate:"required,notblank"`
	Genre       string        `json:"genre,omitempty" bson:"genre,omitempty"`
	Rating      *int          `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	PosterImage string        `json:"posterImage,omitempty" bson:"posterImage,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// MovieInput is the request body accepted by create and update.
// Identity and timestamps are owned by the server, so they are not decoded.
type MovieInput struct {
	Title       string `json:"title"`
	Genre       string `json:"genre,omitempty"`
	Rating      *int   `json:"rating,omitempty"`
	PosterImage string `json:"posterImage,omitempty"`
}

// ToMovie copies the client-editable fields into a new Movie.
func (in *MovieInput) ToMovie() *Movie {
	return &Movie{
		Title:       in.Title,
		Genre:       in.Genre,
		Rating:      in.Rating,
		PosterImage: in.PosterImage,
	}
}

// MovieFilter holds the optional list predicates. Zero values mean "not set";
// a blank Genre or GenreAll is treated as unset.
type MovieFilter struct {
	Search string
	Genre  string
	Rating *int
}

// HasGenre reports whether the genre predicate applies.
func (f MovieFilter) HasGenre() bool {
	return strings.TrimSpace(f.Genre) != "" && f.Genre != GenreAll
}
