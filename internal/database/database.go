// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
)

// DB wraps the MongoDB client and the collections the service uses.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    *config.DatabaseConfig
	movies *MovieStore
}

// New connects to MongoDB and verifies the primary is reachable.
// Both the connect and the initial ping are bounded by cfg.ConnectTimeout.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("marquee").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectQuietly(client)
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	database := client.Database(cfg.Name)

	logging.Info().
		Str("database", cfg.Name).
		Str("collection", cfg.MoviesCollection).
		Msg("Connected to MongoDB")

	return &DB{
		client: client,
		db:     database,
		cfg:    cfg,
		movies: NewMovieStore(database.Collection(cfg.MoviesCollection)),
	}, nil
}

// Movies returns the movie record store.
func (db *DB) Movies() *MovieStore {
	return db.movies
}

// Ping checks that the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections until ctx is done.
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}

// disconnectQuietly releases a client on an error path where the disconnect error is not actionable.
func disconnectQuietly(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultDisconnectTimeout)
	defer cancel()
	_ = client.Disconnect(ctx) //nolint:errcheck // best-effort cleanup
}
