// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package mockdata

import (
	"math"
	"sort"

	"github.com/rohansi4/moviegraph/internal/models"
)

// FallbackRecommendations is the fixed 3-item list served when a personalized
// recommendation request cannot reach the graph database.
func FallbackRecommendations() []models.Recommendation {
	picks := []int64{1, 3, 5}

	out := make([]models.Recommendation, 0, len(picks))
	for _, id := range picks {
		m, _ := ByID(id)
		out = append(out, models.Recommendation{
			Movie:  m,
			Score:  m.AverageRating,
			Reason: "Popular with all users",
		})
	}

	return out
}

// Popular ranks the mock catalog by the weighted popularity key
// averageRating * ln(ratingCount), mirroring the live popularity strategy.
func Popular(limit int) []models.Recommendation {
	ranked := SortMovies(Movies, SortRating, true)

	out := make([]models.Recommendation, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, models.Recommendation{
			Movie:  m,
			Score:  m.AverageRating * math.Log(float64(m.RatingCount)),
			Reason: "Highly rated by many users",
		})
	}

	sortByScore(out)
	return capRecs(out, limit)
}

// ByGenres recommends mock movies matching any of the given genres, ranked by
// rating then popularity. Used as the cold-start and discover fallback.
func ByGenres(genres []string, limit int) []models.Recommendation {
	matched := Filter{Genres: genres}.Apply(Movies)
	if len(genres) == 0 {
		matched = Catalog()
	}
	ranked := SortMovies(matched, SortRating, true)

	out := make([]models.Recommendation, 0, len(ranked))
	for _, m := range ranked {
		out = append(out, models.Recommendation{
			Movie:  m,
			Score:  m.AverageRating,
			Reason: "Matches your favorite genres",
		})
	}

	return capRecs(out, limit)
}

func sortByScore(recs []models.Recommendation) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].MovieID < recs[j].MovieID
	})
}

func capRecs(recs []models.Recommendation, limit int) []models.Recommendation {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
