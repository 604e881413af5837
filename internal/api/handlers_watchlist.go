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

	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/users"
	"github.com/rohansi4/moviegraph/internal/validation"
)

// handleWatchlist serves GET /api/v1/users/{userID}/watchlist.
func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	ctx, cancel := s.queryContext(r)
	defer cancel()

	entries, err := s.users.Watchlist(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "watchlist listing failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"watchlist": entries}, models.SourceLive, "", started)
}

// watchlistAddBody is the POST /api/v1/users/{userID}/watchlist payload.
type watchlistAddBody struct {
	MovieID int64 `json:"movieId" validate:"required,gt=0"`
}

// handleWatchlistAdd serves POST /api/v1/users/{userID}/watchlist.
// Re-adding a movie already on the list is a no-op.
func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	var body watchlistAddBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid JSON body", nil)
		return
	}
	if details := validation.Struct(body); details != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid request", details)
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	err := s.users.WatchlistAdd(ctx, userID, body.MovieID)
	if errors.Is(err, users.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "user or movie not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "watchlist update failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"movieId": body.MovieID, "added": true},
		models.SourceLive, "", started)
}

// handleWatchlistRemove serves DELETE /api/v1/users/{userID}/watchlist/{movieID}.
// Removing an absent entry succeeds.
func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "movieID must be an integer", nil)
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	if err := s.users.WatchlistRemove(ctx, userID, movieID); err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "watchlist update failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"movieId": movieID, "removed": true},
		models.SourceLive, "", started)
}
