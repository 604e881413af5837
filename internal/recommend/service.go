// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package recommend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/logging"
	"github.com/rohansi4/moviegraph/internal/metrics"
	"github.com/rohansi4/moviegraph/internal/mockdata"
	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/tmdb"
)

// Human-readable reasons attached to recommendations per strategy.
const (
	reasonCollaborative = "Highly rated by users with similar taste"
	reasonHybrid        = "Recommended for you"
	reasonPopular       = "Popular with all users"
	reasonGenreTier     = "Based on your genre preferences"
	reasonSimilarTier   = "Similar to movies you like"
)

// coldStartCap bounds the merged tier 1 + tier 2 cold-start list before the
// request limit applies.
const coldStartCap = 20

// Result is a completed recommendation request. Source and Note feed the
// response metadata so clients can tell live results from mock fallbacks.
type Result struct {
	Recommendations []models.Recommendation
	Strategy        string
	Source          string
	Note            string
}

// Service executes recommendation strategies against the graph, falling back
// to mock data when the database is unavailable. The fallback decision is
// made here, once per request; handlers never probe connectivity themselves.
type Service struct {
	exec         graph.Executor
	posters      *tmdb.Resolver
	defaultLimit int
	maxLimit     int
}

// NewService creates a recommendation service. posters may be nil, in which
// case results carry no poster URLs.
func NewService(exec graph.Executor, posters *tmdb.Resolver, defaultLimit, maxLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	if maxLimit <= 0 {
		maxLimit = 50
	}
	return &Service{exec: exec, posters: posters, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// ForUser returns personalized recommendations. Users with rating history get
// the hybrid strategy; users without any ratings are routed to the cold-start
// resolver. Database unavailability degrades to the fixed mock fallback list.
func (s *Service) ForUser(ctx context.Context, userID string, limit int) Result {
	limit = s.clampLimit(limit)

	count, err := s.ratingCount(ctx, userID)
	if err != nil {
		return s.fallback(StrategyHybrid, limit, err)
	}

	if count == 0 {
		return s.coldStart(ctx, userID, limit)
	}

	rows, err := s.run(ctx, string(StrategyHybrid), HybridQuery(userID, limit))
	if err != nil {
		return s.fallback(StrategyHybrid, limit, err)
	}

	recs := s.mapRows(ctx, rows, reasonHybrid)
	return Result{
		Recommendations: recs,
		Strategy:        string(StrategyHybrid),
		Source:          models.SourceLive,
	}
}

// ByType returns recommendations for an explicitly requested strategy.
// Unknown types silently resolve to hybrid.
func (s *Service) ByType(ctx context.Context, userID, typ string, limit int) Result {
	limit = s.clampLimit(limit)
	strategy := ParseStrategy(typ)

	var (
		q      graph.Query
		reason string
	)
	switch strategy {
	case StrategyCollaborative:
		q, reason = CollaborativeQuery(userID, limit), reasonCollaborative
	case StrategyContent:
		q, reason = ContentBasedQuery(userID, limit), ""
	case StrategyPopular:
		q, reason = PopularityQuery(limit), reasonPopular
	default:
		q, reason = HybridQuery(userID, limit), reasonHybrid
	}

	rows, err := s.run(ctx, string(strategy), q)
	if err != nil {
		return s.fallback(strategy, limit, err)
	}

	var recs []models.Recommendation
	if strategy == StrategyContent {
		recs = s.mapContentRows(ctx, rows)
	} else {
		recs = s.mapRows(ctx, rows, reason)
	}

	return Result{
		Recommendations: recs,
		Strategy:        string(strategy),
		Source:          models.SourceLive,
	}
}

// ratingCount returns the number of RATED edges the user has.
func (s *Service) ratingCount(ctx context.Context, userID string) (int64, error) {
	rows, err := s.run(ctx, "rating_count", RatingCountQuery(userID))
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Int("ratingCount"), nil
}

// run executes one query with latency instrumentation.
func (s *Service) run(ctx context.Context, operation string, q graph.Query) ([]graph.Record, error) {
	start := time.Now()
	rows, err := s.exec.Run(ctx, q.Text, q.Params)
	metrics.ObserveQuery(operation, time.Since(start))
	if err != nil {
		logging.Warn().Err(err).Str("operation", operation).Msg("graph query failed")
		return nil, err
	}
	return rows, nil
}

// fallback serves the mock recommendation list. The popularity strategy gets
// the mock popularity ranking; personalized strategies get the fixed
// fallback triple.
func (s *Service) fallback(strategy Strategy, limit int, cause error) Result {
	metrics.RecordFallback("recommendations")
	logging.Info().Err(cause).Str("strategy", string(strategy)).Msg("serving mock recommendations")

	var recs []models.Recommendation
	if strategy == StrategyPopular {
		recs = mockdata.Popular(limit)
	} else {
		recs = mockdata.FallbackRecommendations()
	}

	return Result{
		Recommendations: recs,
		Strategy:        string(strategy),
		Source:          models.SourceMock,
		Note:            models.MockDataNote,
	}
}

// mapRows converts query rows to recommendations with a shared reason and
// resolves posters.
func (s *Service) mapRows(ctx context.Context, rows []graph.Record, reason string) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(rows))
	for _, row := range rows {
		rec := models.Recommendation{
			Movie:  rowToMovie(row),
			Score:  row.Float("score"),
			Reason: reason,
		}
		recs = append(recs, rec)
	}
	s.resolvePosters(ctx, recs)
	return recs
}

// mapContentRows is mapRows with a per-row reason naming the genre overlap.
func (s *Service) mapContentRows(ctx context.Context, rows []graph.Record) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(rows))
	for _, row := range rows {
		matches := row.Int("genreMatches")
		rec := models.Recommendation{
			Movie:  rowToMovie(row),
			Score:  row.Float("score"),
			Reason: fmt.Sprintf("Matches %d of your favorite genres", matches),
		}
		recs = append(recs, rec)
	}
	s.resolvePosters(ctx, recs)
	return recs
}

// resolvePosters fills PosterURL for each recommendation, a few lookups at a
// time. Poster resolution never fails, so the group carries no errors.
func (s *Service) resolvePosters(ctx context.Context, recs []models.Recommendation) {
	if s.posters == nil {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range recs {
		i := i
		g.Go(func() error {
			m := &recs[i].Movie
			m.PosterURL = s.posters.PosterURL(ctx, m.MovieID, m.TmdbID, m.Title)
			return nil
		})
	}
	_ = g.Wait()
}

// clampLimit applies the default and maximum result limits.
func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// rowToMovie projects a recommendation query row onto a Movie. The year
// column wins when present; otherwise the "(YYYY)" title suffix is used.
func rowToMovie(row graph.Record) models.Movie {
	rawTitle := row.String("title")
	title, suffixYear := models.TitleYear(rawTitle)

	year := int(row.Int("year"))
	if year == 0 {
		year = suffixYear
	}

	return models.Movie{
		MovieID:       row.Int("movieId"),
		Title:         title,
		Genres:        row.Strings("genres"),
		Year:          year,
		AverageRating: row.Float("averageRating"),
		RatingCount:   row.Int("ratingCount"),
		TmdbID:        row.Int("tmdbId"),
	}
}
