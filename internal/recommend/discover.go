// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package recommend

import (
	"context"
	"strings"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/mockdata"
	"github.com/rohansi4/moviegraph/internal/models"
)

// DiscoverRequest is a filtered discovery request. Zero values mean "not
// supplied" and the corresponding query clause is omitted.
type DiscoverRequest struct {
	UserID         string   `json:"userId"`
	Genres         []string `json:"genres"`
	MinYear        int      `json:"minYear"`
	MaxYear        int      `json:"maxYear"`
	MinRating      float64  `json:"minRating"`
	Limit          int      `json:"limit"`
	ExcludeWatched bool     `json:"excludeWatched"`
}

// Discovery blend weights: normalized average rating versus log-scaled rating
// count. log10(count+1)/3 saturates around a thousand ratings, so a
// well-rated niche title can still outrank a mediocre blockbuster.
const (
	discoverRatingWeight = 0.6
	discoverCountWeight  = 0.4
)

// DiscoverQuery builds a single filtered discovery query: filters narrow the
// candidate set, the score ranks survivors by quality and sample size.
// Clauses for absent filters are omitted, not matched against sentinels.
// ExcludeWatched requires UserID and excludes everything the user has a RATED
// edge to.
func DiscoverQuery(req DiscoverRequest, limit int) graph.Query {
	params := map[string]any{"limit": limit}

	var b strings.Builder
	b.WriteString(`
MATCH (m:Movie)
OPTIONAL MATCH (m)<-[r:RATED]-()
WITH m, coalesce(avg(r.rating), 0.0) AS averageRating, count(r) AS ratingCount`)

	var conds []string
	if len(req.Genres) > 0 {
		conds = append(conds, "any(g IN m.genres WHERE g IN $genres)")
		params["genres"] = req.Genres
	}
	if req.MinYear > 0 {
		conds = append(conds, "m.year >= $minYear")
		params["minYear"] = req.MinYear
	}
	if req.MaxYear > 0 {
		conds = append(conds, "m.year <= $maxYear")
		params["maxYear"] = req.MaxYear
	}
	if req.MinRating > 0 {
		conds = append(conds, "averageRating >= $minRating")
		params["minRating"] = req.MinRating
	}
	if req.ExcludeWatched && req.UserID != "" {
		conds = append(conds, "NOT (:User {userId: $userId})-[:RATED]->(m)")
		params["userId"] = req.UserID
	}

	if len(conds) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(conds, "\n  AND "))
	}

	b.WriteString(`
WITH m, averageRating, ratingCount,
     (averageRating / 5.0) * $ratingWeight + (log10(ratingCount + 1) / 3.0) * $countWeight AS score
ORDER BY score DESC, ratingCount DESC
LIMIT $limit
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId, averageRating, ratingCount, score`)

	params["ratingWeight"] = discoverRatingWeight
	params["countWeight"] = discoverCountWeight

	return graph.Query{Text: b.String(), Params: params}
}

// Discover runs a filtered discovery request. Database unavailability
// degrades to the mock catalog filtered by the requested genres.
func (s *Service) Discover(ctx context.Context, req DiscoverRequest) Result {
	limit := s.clampLimit(req.Limit)

	rows, err := s.run(ctx, "discover", DiscoverQuery(req, limit))
	if err != nil {
		return s.discoverFallback(req, limit, err)
	}

	recs := s.mapRows(ctx, rows, "Matches your filters")
	return Result{
		Recommendations: recs,
		Strategy:        "discover",
		Source:          models.SourceLive,
	}
}

// discoverFallback serves the discovery request from mock data, honoring the
// genre filter when one was supplied.
func (s *Service) discoverFallback(req DiscoverRequest, limit int, cause error) Result {
	var recs []models.Recommendation
	if len(req.Genres) > 0 {
		recs = mockdata.ByGenres(req.Genres, limit)
	} else {
		recs = mockdata.Popular(limit)
	}

	res := s.fallback(StrategyHybrid, limit, cause)
	res.Strategy = "discover"
	res.Recommendations = recs
	return res
}
