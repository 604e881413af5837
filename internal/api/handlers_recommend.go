// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/recommend"
	"github.com/rohansi4/moviegraph/internal/validation"
)

// queryContext bounds a handler's graph work by the configured query
// timeout.
func (s *Server) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.cfg.Server.QueryTimeout)
}

// handleRecommendationsForUser serves GET /api/v1/recommendations/{userID}.
// Errors inside the recommendation pipeline never surface as 5xx; the
// service degrades to mock data and the response says so in the metadata.
func (s *Server) handleRecommendationsForUser(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, codeValidation, "userID is required", nil)
		return
	}
	limit := queryInt(r.URL.Query().Get("limit"), s.cfg.API.DefaultRecLimit)

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res := s.recs.ForUser(ctx, userID, limit)
	s.respondRecommendations(w, started, userID, res)
}

// handleRecommendationsByType serves GET /api/v1/recommendations with
// userId, type and limit query parameters. Unknown types silently default
// to hybrid.
func (s *Server) handleRecommendationsByType(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	q := r.URL.Query()

	userID := q.Get("userId")
	typ := q.Get("type")
	limit := queryInt(q.Get("limit"), s.cfg.API.DefaultRecLimit)

	if userID == "" && recommend.ParseStrategy(typ) != recommend.StrategyPopular {
		respondError(w, http.StatusBadRequest, codeValidation,
			"userId is required for personalized strategies", nil)
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res := s.recs.ByType(ctx, userID, typ, limit)
	s.respondRecommendations(w, started, userID, res)
}

// discoverBody is the POST /api/v1/recommendations payload.
type discoverBody struct {
	UserID         string   `json:"userId"`
	Genres         []string `json:"genres"`
	MinYear        int      `json:"minYear" validate:"omitempty,gte=1870"`
	MaxYear        int      `json:"maxYear" validate:"omitempty,gte=1870"`
	MinRating      float64  `json:"minRating" validate:"omitempty,gte=0,lte=5"`
	Limit          int      `json:"limit" validate:"omitempty,gte=1,lte=50"`
	ExcludeWatched bool     `json:"excludeWatched"`
}

// handleDiscover serves POST /api/v1/recommendations: filtered discovery
// via a single combined query.
func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var body discoverBody
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

	res := s.recs.Discover(ctx, recommend.DiscoverRequest{
		UserID:         body.UserID,
		Genres:         body.Genres,
		MinYear:        body.MinYear,
		MaxYear:        body.MaxYear,
		MinRating:      body.MinRating,
		Limit:          body.Limit,
		ExcludeWatched: body.ExcludeWatched,
	})
	s.respondRecommendations(w, started, body.UserID, res)
}

func (s *Server) respondRecommendations(w http.ResponseWriter, started time.Time, userID string, res recommend.Result) {
	respondData(w, http.StatusOK, models.RecommendationData{
		Recommendations:      res.Recommendations,
		TotalRecommendations: len(res.Recommendations),
		UserID:               userID,
		Strategy:             res.Strategy,
	}, res.Source, res.Note, started)
}
