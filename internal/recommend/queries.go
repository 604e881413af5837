// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package recommend implements the recommendation strategies as parameterized
// Cypher query builders plus the service that executes them.
//
// # Strategies
//
//   - Collaborative: movies liked by users with similar rating behavior
//   - Content-based: movies sharing genres with highly rated history
//   - Hybrid: fixed-weight linear blend of content, collaborative and
//     popularity signals
//   - Popularity: global weighted-popularity ranking
//   - Cold start: declared-preference tiers for users with no rating history
//
// All builders are pure functions over (userId, tunables) -> graph.Query.
// Ratings use the canonical 0-5 scale everywhere; average ratings and rating
// counts are read-time aggregates over RATED edges, never cached node
// properties.
package recommend

import (
	"github.com/rohansi4/moviegraph/internal/graph"
)

// Strategy identifies a recommendation strategy.
type Strategy string

// Known strategies. ParseStrategy maps unknown values to StrategyHybrid.
const (
	StrategyCollaborative Strategy = "collaborative"
	StrategyContent       Strategy = "content"
	StrategyHybrid        Strategy = "hybrid"
	StrategyPopular       Strategy = "popular"
)

// ParseStrategy resolves a request type string. Unknown types silently
// default to hybrid.
func ParseStrategy(s string) Strategy {
	switch Strategy(s) {
	case StrategyCollaborative, StrategyContent, StrategyHybrid, StrategyPopular:
		return Strategy(s)
	default:
		return StrategyHybrid
	}
}

// Hybrid blend weights. These are fixed heuristic constants, not learned
// parameters; the blended score is a ranking signal with no calibration
// guarantee across strategies.
const (
	hybridContentWeight       = 0.4
	hybridCollaborativeWeight = 0.4
	hybridPopularityWeight    = 0.2
)

// Rating-scale thresholds (0-5 canonical scale).
const (
	likeThreshold       = 4.0  // a rating >= 4 counts as "liked"
	contentQualityFloor = 3.5  // minimum average for content-based candidates
	popularityFloor     = 3.75 // minimum average for the popularity strategy
	popularityMinCount  = 100  // minimum rating count for the popularity strategy
	coldStartFloor      = 3.5  // minimum average for cold-start candidates
	coldStartMinCount   = 10   // minimum rating count for cold-start tiers 1-2
	fallbackMinCount    = 50   // minimum rating count for the global fallback tier
)

// minCommonMovies is the overlap floor below which two users are never
// considered similar.
const minCommonMovies = 3

// similarUserLimit caps the neighborhood used by the collaborative strategy.
const similarUserLimit = 10

// CollaborativeQuery builds the user-based collaborative filtering query.
//
// Neighbors must share at least 3 rated movies with the target; similarity is
// (common*5 - sum(|ratingDiff|)) / (common*5) and neighbors are ranked by that
// similarity (not by raw overlap count). Candidate movies are those the top
// neighbors rated >= 4 and the target has never rated, ranked by the
// neighbors' average rating then by supporting-rating count.
func CollaborativeQuery(userID string, limit int) graph.Query {
	return graph.Query{
		Text: `
MATCH (target:User {userId: $userId})-[r1:RATED]->(m:Movie)<-[r2:RATED]-(other:User)
WHERE other.userId <> $userId
WITH target, other, count(m) AS commonMovies, sum(abs(r1.rating - r2.rating)) AS totalDiff
WHERE commonMovies >= $minCommon
WITH target, other, (commonMovies * 5.0 - totalDiff) / (commonMovies * 5.0) AS similarity
ORDER BY similarity DESC
LIMIT $neighborLimit
MATCH (other)-[r:RATED]->(rec:Movie)
WHERE r.rating >= $likeThreshold AND NOT (target)-[:RATED]->(rec)
WITH rec, avg(r.rating) AS score, count(r) AS supporters
ORDER BY score DESC, supporters DESC
LIMIT $limit
RETURN rec.movieId AS movieId, rec.title AS title, rec.genres AS genres,
       rec.year AS year, rec.tmdbId AS tmdbId,
       score AS averageRating, supporters AS ratingCount, score`,
		Params: map[string]any{
			"userId":        userID,
			"minCommon":     minCommonMovies,
			"neighborLimit": similarUserLimit,
			"likeThreshold": likeThreshold,
			"limit":         limit,
		},
	}
}

// ContentBasedQuery builds the content-based filtering query.
//
// The user's top-5 preferred genres are derived from movies they rated >= 4,
// by frequency with the genre's average rating as tie-break. Candidates are
// unrated movies in those genres whose read-time average is at least 3.5,
// ranked by matching-genre count, then average rating, then rating count.
func ContentBasedQuery(userID string, limit int) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[r:RATED]->(m:Movie)
WHERE r.rating >= $likeThreshold
UNWIND m.genres AS genre
WITH u, genre, count(*) AS freq, avg(r.rating) AS genreAvg
ORDER BY freq DESC, genreAvg DESC
LIMIT 5
WITH u, collect(genre) AS preferredGenres
MATCH (rec:Movie)<-[rr:RATED]-()
WHERE NOT (u)-[:RATED]->(rec)
  AND any(g IN rec.genres WHERE g IN preferredGenres)
WITH rec, preferredGenres, avg(rr.rating) AS averageRating, count(rr) AS ratingCount
WHERE averageRating >= $qualityFloor
WITH rec, averageRating, ratingCount,
     size([g IN rec.genres WHERE g IN preferredGenres]) AS genreMatches
ORDER BY genreMatches DESC, averageRating DESC, ratingCount DESC
LIMIT $limit
RETURN rec.movieId AS movieId, rec.title AS title, rec.genres AS genres,
       rec.year AS year, rec.tmdbId AS tmdbId,
       averageRating, ratingCount, genreMatches, toFloat(genreMatches) AS score`,
		Params: map[string]any{
			"userId":        userID,
			"likeThreshold": likeThreshold,
			"qualityFloor":  contentQualityFloor,
			"limit":         limit,
		},
	}
}

// HybridQuery builds the fixed-weight blended query:
//
//	0.4 * genreMatches/totalPreferredGenres
//	+ 0.4 * avgNeighborRating/5 (0 when no neighbor data)
//	+ 0.2 * averageRating/5
//
// Preferred genres are collected in an aggregating subquery, so a user whose
// ratings all fall below the like threshold gets an empty genre list rather
// than an empty result: the content and collaborative terms contribute zero
// and candidates rank on the popularity term alone.
func HybridQuery(userID string, limit int) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})
CALL {
    WITH u
    MATCH (u)-[r:RATED]->(m:Movie)
    WHERE r.rating >= $likeThreshold
    UNWIND m.genres AS genre
    WITH genre, count(*) AS freq
    ORDER BY freq DESC
    LIMIT 5
    RETURN collect(genre) AS preferredGenres
}
MATCH (rec:Movie)<-[rr:RATED]-()
WHERE NOT (u)-[:RATED]->(rec)
WITH u, rec, preferredGenres, avg(rr.rating) AS averageRating, count(rr) AS ratingCount
WITH u, rec, averageRating, ratingCount,
     size([g IN rec.genres WHERE g IN preferredGenres]) AS genreMatches,
     size(preferredGenres) AS totalPreferred
OPTIONAL MATCH (u)-[:RATED]->(:Movie)<-[:RATED]-(nb:User)-[nr:RATED]->(rec)
WITH rec, averageRating, ratingCount, genreMatches, totalPreferred,
     avg(nr.rating) AS neighborAvg
WITH rec, averageRating, ratingCount, genreMatches,
     (CASE WHEN totalPreferred > 0
           THEN toFloat(genreMatches) / totalPreferred ELSE 0.0 END) * $contentWeight
   + (CASE WHEN neighborAvg IS NULL
           THEN 0.0 ELSE neighborAvg / 5.0 END) * $collabWeight
   + (averageRating / 5.0) * $popWeight AS score
ORDER BY score DESC
LIMIT $limit
RETURN rec.movieId AS movieId, rec.title AS title, rec.genres AS genres,
       rec.year AS year, rec.tmdbId AS tmdbId,
       averageRating, ratingCount, genreMatches, score`,
		Params: map[string]any{
			"userId":        userID,
			"likeThreshold": likeThreshold,
			"contentWeight": hybridContentWeight,
			"collabWeight":  hybridCollaborativeWeight,
			"popWeight":     hybridPopularityWeight,
			"limit":         limit,
		},
	}
}

// PopularityQuery builds the global popularity query: movies with an average
// of at least 3.75 across at least 100 ratings, ranked by the weighted
// popularity key averageRating * ln(ratingCount), which rewards both quality
// and sample size.
func PopularityQuery(limit int) graph.Query {
	return graph.Query{
		Text: `
MATCH (m:Movie)<-[r:RATED]-()
WITH m, avg(r.rating) AS averageRating, count(r) AS ratingCount
WHERE averageRating >= $ratingFloor AND ratingCount >= $minCount
WITH m, averageRating, ratingCount, averageRating * log(ratingCount) AS score
ORDER BY score DESC
LIMIT $limit
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId,
       averageRating, ratingCount, score`,
		Params: map[string]any{
			"ratingFloor": popularityFloor,
			"minCount":    popularityMinCount,
			"limit":       limit,
		},
	}
}

// RatingCountQuery counts the target user's RATED edges. It routes
// personalized requests: zero ratings means the cold-start resolver applies.
func RatingCountQuery(userID string) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})
OPTIONAL MATCH (u)-[r:RATED]->(:Movie)
RETURN count(r) AS ratingCount`,
		Params: map[string]any{"userId": userID},
	}
}

// GenrePreferenceQuery builds cold-start tier 1: movies in any of the user's
// declared liked genres with average >= 3.5 across more than 10 ratings,
// ranked by rating then count, capped at 15.
func GenrePreferenceQuery(userID string) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[:LIKES_GENRE]->(g:Genre)
WITH collect(g.name) AS likedGenres
MATCH (m:Movie)<-[r:RATED]-()
WHERE any(genre IN m.genres WHERE genre IN likedGenres)
WITH m, avg(r.rating) AS averageRating, count(r) AS ratingCount
WHERE averageRating >= $ratingFloor AND ratingCount > $minCount
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId,
       averageRating, ratingCount, averageRating AS score
ORDER BY averageRating DESC, ratingCount DESC
LIMIT 15`,
		Params: map[string]any{
			"userId":      userID,
			"ratingFloor": coldStartFloor,
			"minCount":    coldStartMinCount,
		},
	}
}

// LikedMovieSimilarityQuery builds cold-start tier 2: movies sharing at least
// one genre with any of the user's declared favorite movies (the favorites
// themselves excluded), same quality floors as tier 1, ranked by the number
// of favorites sharing a genre then by rating, capped at 10.
func LikedMovieSimilarityQuery(userID string) graph.Query {
	return graph.Query{
		Text: `
MATCH (u:User {userId: $userId})-[:LIKES]->(fav:Movie)
MATCH (m:Movie)<-[r:RATED]-()
WHERE m <> fav AND NOT (u)-[:LIKES]->(m)
  AND any(g IN m.genres WHERE g IN fav.genres)
WITH m, count(DISTINCT fav) AS sharedFavorites,
     avg(r.rating) AS averageRating, count(DISTINCT r) AS ratingCount
WHERE averageRating >= $ratingFloor AND ratingCount > $minCount
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId,
       averageRating, ratingCount, toFloat(sharedFavorites) AS score
ORDER BY sharedFavorites DESC, averageRating DESC
LIMIT 10`,
		Params: map[string]any{
			"userId":      userID,
			"ratingFloor": coldStartFloor,
			"minCount":    coldStartMinCount,
		},
	}
}

// GlobalPopularityQuery builds cold-start tier 3, the last-resort fallback:
// any movie rated more than 50 times, ranked by rating then count, capped
// at 20. Only consulted when tiers 1 and 2 are both empty.
func GlobalPopularityQuery() graph.Query {
	return graph.Query{
		Text: `
MATCH (m:Movie)<-[r:RATED]-()
WITH m, avg(r.rating) AS averageRating, count(r) AS ratingCount
WHERE averageRating IS NOT NULL AND ratingCount > $minCount
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId,
       averageRating, ratingCount, averageRating AS score
ORDER BY averageRating DESC, ratingCount DESC
LIMIT 20`,
		Params: map[string]any{"minCount": fallbackMinCount},
	}
}
