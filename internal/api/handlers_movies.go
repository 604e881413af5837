// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/models"
)

// handleListMovies serves GET /api/v1/movies with pagination, filtering,
// sorting and search.
func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	opts := catalog.ListOptions{
		Page:      queryInt(q.Get("page"), 1),
		Limit:     queryInt(q.Get("limit"), s.cfg.API.DefaultPageSize),
		Genre:     q.Get("genre"),
		Year:      queryInt(q.Get("year"), 0),
		MinRating: queryFloat(q.Get("minRating")),
		MaxRating: queryFloat(q.Get("maxRating")),
		SortBy:    q.Get("sortBy"),
		SortDesc:  q.Get("sortOrder") == "desc",
		Search:    q.Get("q"),
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res := s.catalog.List(ctx, opts)
	respondData(w, http.StatusOK, models.MovieListData{
		Movies:     res.Movies,
		Pagination: res.Page,
	}, res.Source, res.Note, started)
}

// handleGetMovie serves GET /api/v1/movies/{movieID}.
func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "movieID must be an integer", nil)
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res, err := s.catalog.Get(ctx, movieID)
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "movie not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "movie lookup failed", nil)
		return
	}

	respondData(w, http.StatusOK, res.Movie, res.Source, res.Note, started)
}

// handleGenres serves GET /api/v1/genres.
func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res := s.catalog.Genres(ctx)
	respondData(w, http.StatusOK, map[string]any{"genres": res.Genres}, res.Source, res.Note, started)
}

// queryInt parses a query parameter as int with a fallback default.
func queryInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryFloat parses a query parameter as float64, 0 when absent or invalid.
func queryFloat(raw string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}
