// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package database provides MongoDB access for Marquee.
//
// DB owns the driver client and hands out MovieStore, the record store
// adapter for the movies collection:
//
//	db, err := database.New(ctx, &cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close(context.Background())
//
//	movies, err := db.Movies().List(ctx, models.MovieFilter{Genre: "Drama"})
//
// # Files
//
//   - database.go: client lifecycle (connect, ping, disconnect)
//   - movies.go: list, count, get, create, replace and delete for movies
//   - filter.go: translation of list predicates into a filter document
//   - errors.go: sentinel errors
//
// Every operation is timed into the mongodb_operation_* metrics. Lookups of
// unknown or malformed ids report ErrMovieNotFound (GetByID) or false
// (Update, Delete) rather than a driver error.
//
// Integration tests run against a real MongoDB started by testcontainers and
// are guarded by the integration build tag:
//
//	go test -tags integration ./internal/database/...
package database
