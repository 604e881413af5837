// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/logging"
	"github.com/rohansi4/moviegraph/internal/metrics"
	"github.com/rohansi4/moviegraph/internal/models"
)

// ErrNotFound is returned when no user has the requested userId.
var ErrNotFound = errors.New("user not found")

// Rating bounds on the canonical 0-5 scale. Out-of-range ratings are clamped
// rather than rejected.
const (
	minRating = 0.5
	maxRating = 5.0
)

// defaultListLimit bounds the all-users listing.
const defaultListLimit = 100

// Preferences are a user's declared onboarding preferences. Saving them
// replaces any previously declared set.
type Preferences struct {
	Genres        []string `json:"genres"`
	Moods         []string `json:"moods"`
	LikedMovieIDs []int64  `json:"likedMovieIds"`
}

// Service manages users against the graph.
type Service struct {
	exec graph.Executor
}

// NewService creates a user service.
func NewService(exec graph.Executor) *Service {
	return &Service{exec: exec}
}

// GetOrCreate upserts a user by username. New users get a generated userId
// and start un-onboarded.
func (s *Service) GetOrCreate(ctx context.Context, username, email string) (models.User, error) {
	rows, err := s.run(ctx, "user_get_or_create", GetOrCreateQuery(username, email, uuid.NewString()))
	if err != nil {
		return models.User{}, err
	}
	if len(rows) == 0 {
		return models.User{}, ErrNotFound
	}
	return rowToUser(rows[0]), nil
}

// Get looks a user up by userId.
func (s *Service) Get(ctx context.Context, userID string) (models.User, error) {
	rows, err := s.run(ctx, "user_get", GetQuery(userID))
	if err != nil {
		return models.User{}, err
	}
	if len(rows) == 0 {
		return models.User{}, ErrNotFound
	}
	return rowToUser(rows[0]), nil
}

// List returns known users, most recent first.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.run(ctx, "user_list", ListQuery(defaultListLimit))
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// SavePreferences replaces the user's declared preferences and marks them
// onboarded.
func (s *Service) SavePreferences(ctx context.Context, userID string, prefs Preferences) (models.User, error) {
	q := SavePreferencesQuery(userID, prefs.Genres, prefs.Moods, prefs.LikedMovieIDs)
	rows, err := s.run(ctx, "user_save_preferences", q)
	if err != nil {
		return models.User{}, err
	}
	if len(rows) == 0 {
		return models.User{}, ErrNotFound
	}
	return rowToUser(rows[0]), nil
}

// Rate upserts the user's rating of a movie, clamping to the canonical
// 0.5-5 range. One RATED edge per (user, movie) pair.
func (s *Service) Rate(ctx context.Context, userID string, movieID int64, rating float64) (float64, error) {
	rating = clampRating(rating)

	rows, err := s.run(ctx, "user_rate", RateQuery(userID, movieID, rating))
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, ErrNotFound
	}
	return rows[0].Float("rating"), nil
}

// Ratings lists the user's rated movies, most recent first.
func (s *Service) Ratings(ctx context.Context, userID string) ([]models.RatedMovie, error) {
	rows, err := s.run(ctx, "user_ratings", RatingsQuery(userID))
	if err != nil {
		return nil, err
	}

	rated := make([]models.RatedMovie, 0, len(rows))
	for _, row := range rows {
		rated = append(rated, models.RatedMovie{
			Movie:      rowToMovie(row),
			UserRating: row.Float("userRating"),
			RatedAt:    row.Time("ratedAt"),
		})
	}
	return rated, nil
}

// Watchlist lists the user's watchlist, most recently added first.
func (s *Service) Watchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	rows, err := s.run(ctx, "watchlist_list", WatchlistQuery(userID))
	if err != nil {
		return nil, err
	}

	entries := make([]models.WatchlistEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.WatchlistEntry{
			Movie:   rowToMovie(row),
			AddedAt: row.Time("addedAt"),
		})
	}
	return entries, nil
}

// WatchlistAdd adds a movie to the watchlist. Re-adding is a no-op.
func (s *Service) WatchlistAdd(ctx context.Context, userID string, movieID int64) error {
	rows, err := s.run(ctx, "watchlist_add", WatchlistAddQuery(userID, movieID))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// WatchlistRemove removes a movie from the watchlist. Removing an absent
// entry is a no-op.
func (s *Service) WatchlistRemove(ctx context.Context, userID string, movieID int64) error {
	_, err := s.run(ctx, "watchlist_remove", WatchlistRemoveQuery(userID, movieID))
	return err
}

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

func clampRating(r float64) float64 {
	if r < minRating {
		return minRating
	}
	if r > maxRating {
		return maxRating
	}
	return r
}

func rowToUser(row graph.Record) models.User {
	return models.User{
		UserID:      row.String("userId"),
		Username:    row.String("username"),
		Email:       row.String("email"),
		IsOnboarded: row.Bool("isOnboarded"),
		JoinDate:    row.Time("joinDate"),
	}
}

func rowToMovie(row graph.Record) models.Movie {
	title, suffixYear := models.TitleYear(row.String("title"))

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
