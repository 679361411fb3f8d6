// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package testinfra provides shared test infrastructure.
//
// # Image Host
//
// MockImageHost is an in-process stand-in for the external image host. It
// records each multipart upload and answers with a configurable response:
//
//	host := testinfra.NewMockImageHost(t)
//	host.RespondWithPath("/uploads/poster.png")
//
//	relay := upload.NewRelay(&config.UploadConfig{URL: host.UploadURL(), Token: "t"}, nil)
//	url, err := relay.Upload(ctx, upload.File{Name: "poster.png", Body: body})
//
//	capture := host.Captures()[0] // Authorization, FileName, Body, ...
//
// # MongoDB Container
//
// Files guarded by the integration build tag start a real MongoDB with
// testcontainers-go:
//
//	func TestMovieStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, mongo)
//	    // mongo.URI is a ready connection string
//	}
//
// Run them with:
//
//	go test -tags integration ./...
package testinfra
