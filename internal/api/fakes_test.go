// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/upload"
)

var errStoreDown = errors.New("connection pool exhausted")

// fakeStore is an in-memory MovieStore. Setting err makes every call fail.
type fakeStore struct {
	mu     sync.Mutex
	movies map[string]models.Movie
	now    time.Time
	err    error

	// updateResult overrides Update's result when non-nil.
	updateResult *bool

	lastFilter models.MovieFilter
	lastUpdate *models.Movie
}

func newFakeStore(movies ...models.Movie) *fakeStore {
	s := &fakeStore{
		movies: make(map[string]models.Movie),
		now:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, m := range movies {
		s.movies[m.ID.Hex()] = m
	}
	return s
}

func (s *fakeStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *fakeStore) List(_ context.Context, filter models.MovieFilter) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}

	result := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if filter.Search != "" && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.HasGenre() && !strings.Contains(strings.ToLower(m.Genre), strings.ToLower(filter.Genre)) {
			continue
		}
		if filter.Rating != nil && (m.Rating == nil || *m.Rating != *filter.Rating) {
			continue
		}
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (s *fakeStore) Count(ctx context.Context, filter models.MovieFilter) (int64, error) {
	movies, err := s.List(ctx, filter)
	return int64(len(movies)), err
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	m, ok := s.movies[id]
	if !ok {
		return nil, database.ErrMovieNotFound
	}
	return &m, nil
}

func (s *fakeStore) Create(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	record := *movie
	record.ID = bson.NewObjectID()
	record.CreatedAt = s.tick()
	record.UpdatedAt = record.CreatedAt
	s.movies[record.ID.Hex()] = record
	return &record, nil
}

func (s *fakeStore) Update(_ context.Context, id string, movie *models.Movie) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	copied := *movie
	s.lastUpdate = &copied
	if s.updateResult != nil {
		return *s.updateResult, nil
	}
	if _, ok := s.movies[id]; !ok {
		return false, nil
	}
	movie.UpdatedAt = s.tick()
	s.movies[id] = *movie
	return true, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.movies[id]; !ok {
		return false, nil
	}
	delete(s.movies, id)
	return true, nil
}

// fakeUploader records the file it was given and returns url/err.
type fakeUploader struct {
	url string
	err error

	called   bool
	name     string
	ctype    string
	contents []byte
}

func (u *fakeUploader) Upload(_ context.Context, f upload.File) (string, error) {
	u.called = true
	u.name = f.Name
	u.ctype = f.ContentType
	if f.Body != nil {
		u.contents, _ = io.ReadAll(f.Body)
	}
	if u.err != nil {
		return "", u.err
	}
	if len(u.contents) == 0 {
		return "", upload.ErrNoFile
	}
	return u.url, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func intPtr(i int) *int { return &i }

func seedMovie(title string, rating *int, createdAt time.Time) models.Movie {
	return models.Movie{
		ID:        bson.NewObjectID(),
		Title:     title,
		Rating:    rating,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// newTestServer wires the full router around the fakes.
func newTestServer(t *testing.T, store *fakeStore, uploader Uploader) http.Handler {
	t.Helper()
	cfg := &config.Config{Security: config.SecurityConfig{CORSOrigins: []string{"http://localhost:5173"}}}
	return NewRouter(NewHandler(store, uploader, fakePinger{}), cfg).SetupChi()
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}
