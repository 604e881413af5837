// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package users manages User nodes and their preference, rating and
// watchlist edges. Users are keyed by the canonical userId string property
// on every relationship type; usernames are unauthenticated identifiers.
//
// Unlike the read-side services there is no mock fallback here: writes
// against an unavailable database fail and surface as errors.
package users

import (
	"github.com/rohansi4/moviegraph/internal/graph"
)

// userReturn is the shared RETURN projection for User nodes.
const userReturn = `
RETURN u.userId AS userId, u.username AS username, u.email AS email,
       u.isOnboarded AS isOnboarded, u.joinDate AS joinDate`

// GetOrCreateQuery upserts a user by username. The userId is only assigned
// on creation and never changes afterwards.
func GetOrCreateQuery(username, email, newUserID string) graph.Query {
	return graph.Query{
		Text: `
MERGE (u:User {username: $username})
ON CREATE SET u.userId = $newUserId,
              u.email = $email,
              u.isOnboarded = false,
              u.joinDate = datetime()` + userReturn,
		Params: map[string]any{
			"username":  username,
			"email":     email,
			"newUserId": newUserID,
		},
	}
}

// GetQuery looks a user up by userId.
func GetQuery(userID string) graph.Query {
	return graph.Query{
		Text:   `MATCH (u:User {userId: $userId})` + userReturn,
		Params: map[string]any{"userId": userID},
	}
}

// ListQuery returns all users, most recent first.
func ListQuery(limit int) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User)` + userReturn + `
ORDER BY u.joinDate DESC
LIMIT $limit`,
		Params: map[string]any{"limit": limit},
	}
}

// SavePreferencesQuery replaces the user's declared preference edges and
// marks them onboarded. Existing LIKES_GENRE, PREFERS_MOOD and LIKES edges
// are removed first so re-running onboarding replaces rather than
// accumulates.
func SavePreferencesQuery(userID string, genres, moods []string, likedMovieIDs []int64) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})
OPTIONAL MATCH (u)-[old:LIKES_GENRE|PREFERS_MOOD|LIKES]->()
DELETE old
WITH DISTINCT u
SET u.isOnboarded = true
FOREACH (name IN $genres |
  MERGE (g:Genre {name: name})
  MERGE (u)-[:LIKES_GENRE]->(g))
FOREACH (name IN $moods |
  MERGE (mo:Mood {name: name})
  MERGE (u)-[:PREFERS_MOOD]->(mo))
FOREACH (movieId IN $likedMovieIds |
  MERGE (m:Movie {movieId: movieId})
  MERGE (u)-[:LIKES]->(m))` + userReturn,
		Params: map[string]any{
			"userId":        userID,
			"genres":        genres,
			"moods":         moods,
			"likedMovieIds": likedMovieIDs,
		},
	}
}

// RateQuery upserts the user's rating of a movie. MERGE keeps one RATED edge
// per (user, movie) pair; re-rating overwrites the rating and timestamp.
func RateQuery(userID string, movieID int64, rating float64) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})
MATCH (m:Movie {movieId: $movieId})
MERGE (u)-[r:RATED]->(m)
SET r.rating = $rating, r.timestamp = datetime()
RETURN m.movieId AS movieId, r.rating AS rating`,
		Params: map[string]any{
			"userId":  userID,
			"movieId": movieID,
			"rating":  rating,
		},
	}
}

// RatingsQuery lists the user's rated movies, most recent first, with
// read-time aggregates for each movie.
func RatingsQuery(userID string) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[r:RATED]->(m:Movie)
OPTIONAL MATCH (m)<-[ar:RATED]-()
WITH m, r, coalesce(avg(ar.rating), 0.0) AS averageRating, count(ar) AS ratingCount
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId, averageRating, ratingCount,
       r.rating AS userRating, r.timestamp AS ratedAt
ORDER BY r.timestamp DESC`,
		Params: map[string]any{"userId": userID},
	}
}

// WatchlistQuery lists the user's watchlist, most recently added first.
func WatchlistQuery(userID string) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[w:WATCHLIST]->(m:Movie)
OPTIONAL MATCH (m)<-[r:RATED]-()
WITH m, w, coalesce(avg(r.rating), 0.0) AS averageRating, count(r) AS ratingCount
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId, averageRating, ratingCount,
       w.addedAt AS addedAt
ORDER BY w.addedAt DESC`,
		Params: map[string]any{"userId": userID},
	}
}

// WatchlistAddQuery adds a movie to the watchlist. A pair is either present
// or absent; re-adding keeps the original addedAt.
func WatchlistAddQuery(userID string, movieID int64) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})
MATCH (m:Movie {movieId: $movieId})
MERGE (u)-[w:WATCHLIST]->(m)
ON CREATE SET w.addedAt = datetime()
RETURN m.movieId AS movieId, w.addedAt AS addedAt`,
		Params: map[string]any{
			"userId":  userID,
			"movieId": movieID,
		},
	}
}

// WatchlistRemoveQuery removes a movie from the watchlist, reporting how
// many edges were deleted (0 or 1).
func WatchlistRemoveQuery(userID string, movieID int64) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[w:WATCHLIST]->(m:Movie {movieId: $movieId})
DELETE w
RETURN count(w) AS removed`,
		Params: map[string]any{
			"userId":  userID,
			"movieId": movieID,
		},
	}
}
