// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/users"
	"github.com/rohansi4/moviegraph/internal/validation"
)

// handleListUsers serves GET /api/v1/users.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	ctx, cancel := s.queryContext(r)
	defer cancel()

	list, err := s.users.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "user listing failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"users": list}, models.SourceLive, "", started)
}

// createUserBody is the POST /api/v1/users payload.
type createUserBody struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// handleCreateUser serves POST /api/v1/users, upserting by username.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var body createUserBody
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

	u, err := s.users.GetOrCreate(ctx, body.Username, body.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "user creation failed", nil)
		return
	}

	respondData(w, http.StatusOK, u, models.SourceLive, "", started)
}

// handleGetUser serves GET /api/v1/users/{userID}.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	ctx, cancel := s.queryContext(r)
	defer cancel()

	u, err := s.users.Get(ctx, userID)
	if errors.Is(err, users.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "user not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "user lookup failed", nil)
		return
	}

	respondData(w, http.StatusOK, u, models.SourceLive, "", started)
}

// preferencesBody is the POST /api/v1/users/{userID}/preferences payload.
type preferencesBody struct {
	Genres        []string `json:"genres" validate:"max=20"`
	Moods         []string `json:"moods" validate:"max=20"`
	LikedMovieIDs []int64  `json:"likedMovieIds" validate:"max=50"`
}

// handleSavePreferences serves POST /api/v1/users/{userID}/preferences,
// replacing declared preferences and marking the user onboarded.
func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	var body preferencesBody
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

	u, err := s.users.SavePreferences(ctx, userID, users.Preferences{
		Genres:        body.Genres,
		Moods:         body.Moods,
		LikedMovieIDs: body.LikedMovieIDs,
	})
	if errors.Is(err, users.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "user not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "saving preferences failed", nil)
		return
	}

	respondData(w, http.StatusOK, u, models.SourceLive, "", started)
}

// rateBody is the POST /api/v1/users/{userID}/ratings payload.
type rateBody struct {
	MovieID int64   `json:"movieId" validate:"required,gt=0"`
	Rating  float64 `json:"rating" validate:"required"`
}

// handleRate serves POST /api/v1/users/{userID}/ratings. Out-of-range
// ratings clamp to the canonical 0.5-5 scale rather than erroring.
func (s *Server) handleRate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	var body rateBody
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

	rating, err := s.users.Rate(ctx, userID, body.MovieID, body.Rating)
	if errors.Is(err, users.ErrNotFound) {
		respondError(w, http.StatusNotFound, codeNotFound, "user or movie not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "saving rating failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"movieId": body.MovieID,
		"rating":  rating,
	}, models.SourceLive, "", started)
}

// handleListRatings serves GET /api/v1/users/{userID}/ratings.
func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")

	ctx, cancel := s.queryContext(r)
	defer cancel()

	rated, err := s.users.Ratings(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQuery, "rating listing failed", nil)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"ratings": rated}, models.SourceLive, "", started)
}
