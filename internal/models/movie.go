// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package models defines the data records exchanged between the graph query
// layer and the HTTP API. The application holds no authoritative in-memory
// state beyond request scope; these types are projections of graph records.
package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Movie is a movie record projected from a Movie graph node.
//
// AverageRating and RatingCount are read-time aggregates over incoming RATED
// edges; they are never stored on the node itself. AverageRating uses the
// canonical 0-5 scale throughout the service.
type Movie struct {
	// MovieID is the globally unique, immutable movie identifier.
	MovieID int64 `json:"movieId"`

	// Title is the display title. Source data may embed a "(YYYY)" year
	// suffix; see TitleYear for extraction.
	Title string `json:"title"`

	// Genres is the ordered genre list (insertion order from source data).
	Genres []string `json:"genres"`

	// Year is the release year, derived from the title suffix or an
	// explicit field.
	Year int `json:"year,omitempty"`

	// AverageRating is the mean of incoming RATED edge weights (0-5 scale).
	AverageRating float64 `json:"averageRating"`

	// RatingCount is the number of incoming RATED edges.
	RatingCount int64 `json:"ratingCount"`

	// TmdbID is the optional external key into TMDB.
	TmdbID int64 `json:"tmdbId,omitempty"`

	// PosterURL is resolved at read time via the poster fallback chain.
	PosterURL string `json:"posterUrl,omitempty"`
}

// Recommendation is a movie with a strategy-specific score and a short
// human-readable reason. Scores are ranking signals only; there is no
// calibration guarantee across strategies.
type Recommendation struct {
	Movie

	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

// User is a user record projected from a User graph node.
// Users are identified by the canonical userId string property.
// There is no authentication; usernames are unauthenticated identifiers.
type User struct {
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	IsOnboarded bool      `json:"isOnboarded"`
	JoinDate    time.Time `json:"joinDate"`
}

// WatchlistEntry is a movie on a user's watchlist with the time it was added.
type WatchlistEntry struct {
	Movie

	AddedAt time.Time `json:"addedAt"`
}

// RatedMovie is a movie together with one user's rating of it.
type RatedMovie struct {
	Movie

	UserRating float64   `json:"userRating"`
	RatedAt    time.Time `json:"ratedAt"`
}

// titleYearPattern matches a trailing "(YYYY)" year suffix in movie titles,
// e.g. "Heat (1995)".
var titleYearPattern = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

// TitleYear extracts the release year from a "(YYYY)" title suffix.
// Returns the bare title and the year, or the original title and 0 when no
// suffix is present.
func TitleYear(title string) (string, int) {
	m := titleYearPattern.FindStringSubmatch(title)
	if m == nil {
		return strings.TrimSpace(title), 0
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return strings.TrimSpace(title), 0
	}

	return strings.TrimSpace(titleYearPattern.ReplaceAllString(title, "")), year
}
