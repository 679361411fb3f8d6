// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// createdAtIndexName names the index backing the list sort.
const createdAtIndexName = "createdAt_desc"

// MovieStore is the record store adapter over the movies collection.
// It is safe for concurrent use; the driver's connection pool is the only shared state.
type MovieStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMovieStore creates a store bound to coll.
func NewMovieStore(coll *mongo.Collection) *MovieStore {
	return &MovieStore{coll: coll, now: time.Now}
}

// timestamp returns the current time in UTC at the precision MongoDB stores.
func (s *MovieStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// observe records the metric for one operation. Not-found outcomes are not errors.
func (s *MovieStore) observe(operation string, start time.Time, err error) {
	if errors.Is(err, ErrMovieNotFound) {
		err = nil
	}
	metrics.RecordDBQuery(operation, s.coll.Name(), time.Since(start), err)
}

// List returns the movies matching filter, newest first.
// The result is never nil; no matches yields an empty slice.
func (s *MovieStore) List(ctx context.Context, filter models.MovieFilter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() { s.observe("find", start, err) }()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, buildMovieFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies = make([]models.Movie, 0)
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	return movies, nil
}

// Count returns how many movies match filter.
func (s *MovieStore) Count(ctx context.Context, filter models.MovieFilter) (n int64, err error) {
	start := time.Now()
	defer func() { s.observe("count", start, err) }()

	n, err = s.coll.CountDocuments(ctx, buildMovieFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

// GetByID returns the movie with the given hex id.
// Unknown and malformed ids both return ErrMovieNotFound.
func (s *MovieStore) GetByID(ctx context.Context, id string) (movie *models.Movie, err error) {
	start := time.Now()
	defer func() { s.observe("find_one", start, err) }()

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	movie = &models.Movie{}
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %s: %w", id, err)
	}

	return movie, nil
}

// Create assigns a new id, stamps createdAt and updatedAt with the same instant,
// inserts the movie and returns it as persisted.
func (s *MovieStore) Create(ctx context.Context, movie *models.Movie) (created *models.Movie, err error) {
	start := time.Now()
	defer func() { s.observe("insert", start, err) }()

	record := *movie
	now := s.timestamp()
	record.ID = bson.NewObjectID()
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err = s.coll.InsertOne(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	return &record, nil
}

// Update stamps updatedAt and replaces the whole document with the given id.
// The caller supplies the immutable fields (id, createdAt) from the stored record.
//
// It reports true only when the server modified a document: a missing or
// malformed id, and a replacement identical to the stored document, report false.
func (s *MovieStore) Update(ctx context.Context, id string, movie *models.Movie) (modified bool, err error) {
	start := time.Now()
	defer func() { s.observe("replace", start, err) }()

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	movie.ID = oid
	movie.UpdatedAt = s.timestamp()

	result, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, movie)
	if err != nil {
		return false, fmt.Errorf("failed to replace movie %s: %w", id, err)
	}

	return result.ModifiedCount > 0, nil
}

// Delete removes the movie with the given id and reports whether one was removed.
func (s *MovieStore) Delete(ctx context.Context, id string) (deleted bool, err error) {
	start := time.Now()
	defer func() { s.observe("delete", start, err) }()

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("failed to delete movie %s: %w", id, err)
	}

	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates the createdAt index used by List. It is idempotent.
func (s *MovieStore) EnsureIndexes(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { s.observe("create_index", start, err) }()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName(createdAtIndexName),
	}

	name, err := s.coll.Indexes().CreateOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", s.coll.Name(), err)
	}

	logging.Debug().Str("collection", s.coll.Name()).Str("index", name).Msg("Index ensured")
	return nil
}
