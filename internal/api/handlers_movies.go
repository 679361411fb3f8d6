// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// ListMovies handles GET /api/movies. The response is always a JSON array.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	filter, verr := parseMovieFilter(r)
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	movies, err := h.movies.List(r.Context(), filter)
	if err != nil {
		respondServerError(w, r, "list_movies", "", err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	respondJSON(w, http.StatusOK, movies)
}

// CountMovies handles GET /api/movies/count with the same filters as ListMovies.
func (h *Handler) CountMovies(w http.ResponseWriter, r *http.Request) {
	filter, verr := parseMovieFilter(r)
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	n, err := h.movies.Count(r.Context(), filter)
	if err != nil {
		respondServerError(w, r, "count_movies", "", err)
		return
	}

	respondJSON(w, http.StatusOK, models.CountResponse{Count: n})
}

// GetMovie handles GET /api/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	movie, err := h.movies.GetByID(r.Context(), id)
	if errors.Is(err, database.ErrMovieNotFound) {
		respondError(w, http.StatusNotFound, msgMovieNotFound)
		return
	}
	if err != nil {
		respondServerError(w, r, "get_movie", id, err)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

// CreateMovie handles POST /api/movies. Client-supplied id and timestamps are ignored.
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.readMovie(w, r)
	if !ok {
		return
	}

	created, err := h.movies.Create(r.Context(), movie)
	if err != nil {
		respondServerError(w, r, "create_movie", "", err)
		return
	}

	w.Header().Set("Location", "/api/movies/"+created.ID.Hex())
	respondJSON(w, http.StatusCreated, created)
}

// UpdateMovie handles PUT /api/movies/{id} as a full replacement.
//
// The id and createdAt of the stored record are kept. A replacement that
// matched nothing (deleted concurrently, or identical to what is stored)
// answers 404.
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	movie, ok := h.readMovie(w, r)
	if !ok {
		return
	}

	existing, err := h.movies.GetByID(r.Context(), id)
	if errors.Is(err, database.ErrMovieNotFound) {
		respondError(w, http.StatusNotFound, msgMovieNotFound)
		return
	}
	if err != nil {
		respondServerError(w, r, "update_movie", id, err)
		return
	}

	movie.ID = existing.ID
	movie.CreatedAt = existing.CreatedAt

	modified, err := h.movies.Update(r.Context(), id, movie)
	if err != nil {
		respondServerError(w, r, "update_movie", id, err)
		return
	}
	if !modified {
		respondError(w, http.StatusNotFound, msgMovieNotFound)
		return
	}

	respondJSON(w, http.StatusOK, movie)
}

// DeleteMovie handles DELETE /api/movies/{id}.
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.movies.Delete(r.Context(), id)
	if err != nil {
		respondServerError(w, r, "delete_movie", id, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, msgMovieNotFound)
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: msgMovieDeleted})
}

// readMovie decodes and validates a movie body. On failure it has already
// written the 400 response and returns false.
func (h *Handler) readMovie(w http.ResponseWriter, r *http.Request) (*models.Movie, bool) {
	var input models.MovieInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}

	movie := input.ToMovie()
	if verr := validation.ValidateStruct(movie); verr != nil {
		respondValidationError(w, verr)
		return nil, false
	}

	return movie, true
}
