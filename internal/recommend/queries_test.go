// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollaborativeQueryRanksNeighborsBySimilarity(t *testing.T) {
	q := CollaborativeQuery("u-1", 10)

	assert.Contains(t, q.Text, "(commonMovies * 5.0 - totalDiff) / (commonMovies * 5.0) AS similarity")
	assert.Contains(t, q.Text, "ORDER BY similarity DESC")
	assert.Contains(t, q.Text, "NOT (target)-[:RATED]->(rec)")
	assert.Equal(t, "u-1", q.Params["userId"])
	assert.Equal(t, minCommonMovies, q.Params["minCommon"])
	assert.Equal(t, 10, q.Params["limit"])
}

func TestPopularityQueryUsesWeightedKey(t *testing.T) {
	q := PopularityQuery(10)

	assert.Contains(t, q.Text, "averageRating * log(ratingCount) AS score")
	assert.Equal(t, popularityFloor, q.Params["ratingFloor"])
	assert.Equal(t, popularityMinCount, q.Params["minCount"])
}

func TestHybridQueryCarriesBlendWeights(t *testing.T) {
	q := HybridQuery("u-1", 10)

	assert.Equal(t, hybridContentWeight, q.Params["contentWeight"])
	assert.Equal(t, hybridCollaborativeWeight, q.Params["collabWeight"])
	assert.Equal(t, hybridPopularityWeight, q.Params["popWeight"])
	assert.InDelta(t, 1.0, hybridContentWeight+hybridCollaborativeWeight+hybridPopularityWeight, 1e-9)
}

// A user whose ratings all fall below the like threshold must still get
// results: the genre derivation runs in an aggregating subquery that yields
// one row with an empty list, never zero rows, so the candidate MATCH and the
// popularity term survive.
func TestHybridQueryToleratesEmptyLikedHistory(t *testing.T) {
	q := HybridQuery("u-1", 10)

	sub := strings.Index(q.Text, "CALL {")
	candidates := strings.Index(q.Text, "MATCH (rec:Movie)")
	assert.GreaterOrEqual(t, sub, 0, "genre derivation must be an isolated subquery")
	assert.Greater(t, candidates, sub, "candidate MATCH must follow the subquery")
	assert.Contains(t, q.Text, "RETURN collect(genre) AS preferredGenres")
	assert.Contains(t, q.Text, "CASE WHEN totalPreferred > 0")
}

func TestDiscoverQueryOmitsAbsentClauses(t *testing.T) {
	q := DiscoverQuery(DiscoverRequest{}, 10)

	assert.NotContains(t, q.Text, "WHERE")
	assert.NotContains(t, q.Text, "$genres")
	assert.NotContains(t, q.Text, "$minYear")
	_, hasGenres := q.Params["genres"]
	assert.False(t, hasGenres)
}

func TestDiscoverQueryIncludesSuppliedClauses(t *testing.T) {
	q := DiscoverQuery(DiscoverRequest{
		UserID:         "7",
		Genres:         []string{"Comedy"},
		MinRating:      3.0,
		MinYear:        1990,
		ExcludeWatched: true,
	}, 10)

	assert.Contains(t, q.Text, "g IN $genres")
	assert.Contains(t, q.Text, "m.year >= $minYear")
	assert.Contains(t, q.Text, "averageRating >= $minRating")
	assert.Contains(t, q.Text, "NOT (:User {userId: $userId})-[:RATED]->(m)")
	assert.NotContains(t, q.Text, "exists(", "exists(<pattern>) was removed in Neo4j 5")
	assert.Equal(t, "7", q.Params["userId"])
}

func TestDiscoverQueryBlendsRatingAndCount(t *testing.T) {
	q := DiscoverQuery(DiscoverRequest{}, 10)

	assert.Contains(t, q.Text, "(averageRating / 5.0) * $ratingWeight + (log10(ratingCount + 1) / 3.0) * $countWeight AS score")
	assert.Equal(t, discoverRatingWeight, q.Params["ratingWeight"])
	assert.Equal(t, discoverCountWeight, q.Params["countWeight"])
	assert.InDelta(t, 1.0, discoverRatingWeight+discoverCountWeight, 1e-9)
}

func TestDiscoverQueryExcludeWatchedNeedsUser(t *testing.T) {
	q := DiscoverQuery(DiscoverRequest{ExcludeWatched: true}, 10)

	assert.False(t, strings.Contains(q.Text, "$userId"), "exclude-watched without a user must not emit the exclusion clause")
	_, hasUser := q.Params["userId"]
	assert.False(t, hasUser)
}

func TestColdStartTierCaps(t *testing.T) {
	assert.Contains(t, GenrePreferenceQuery("u").Text, "LIMIT 15")
	assert.Contains(t, LikedMovieSimilarityQuery("u").Text, "LIMIT 10")
	assert.Contains(t, GlobalPopularityQuery().Text, "LIMIT 20")
}
