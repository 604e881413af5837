// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package recommend

import (
	"context"

	"github.com/rohansi4/moviegraph/internal/models"
)

// coldStartStrategy is the strategy name reported for users with no rating
// history.
const coldStartStrategy = "cold_start"

// coldStartNote nudges new users toward rating movies so personalized
// strategies can take over.
const coldStartNote = "Recommendations are based on your onboarding preferences. Rate some movies to get personalized picks."

// coldStart resolves recommendations for a user with zero ratings.
//
// Tier 1 (declared genre likes) and tier 2 (movies similar to declared
// favorites) are fetched, concatenated in that order, and deduplicated by
// movieId with the first occurrence winning, then truncated to 20. Tier 3
// (global popularity) is consulted only when the merged list is empty, so a
// user with even one matching preference never sees generic results.
func (s *Service) coldStart(ctx context.Context, userID string, limit int) Result {
	tier1, err := s.run(ctx, "cold_start_genres", GenrePreferenceQuery(userID))
	if err != nil {
		return s.fallback(StrategyHybrid, limit, err)
	}

	tier2, err := s.run(ctx, "cold_start_similar", LikedMovieSimilarityQuery(userID))
	if err != nil {
		return s.fallback(StrategyHybrid, limit, err)
	}

	recs := mergeTiers(
		s.mapRows(ctx, tier1, reasonGenreTier),
		s.mapRows(ctx, tier2, reasonSimilarTier),
	)

	if len(recs) == 0 {
		tier3, err := s.run(ctx, "cold_start_popular", GlobalPopularityQuery())
		if err != nil {
			return s.fallback(StrategyHybrid, limit, err)
		}
		recs = s.mapRows(ctx, tier3, reasonPopular)
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}

	return Result{
		Recommendations: recs,
		Strategy:        coldStartStrategy,
		Source:          models.SourceLive,
		Note:            coldStartNote,
	}
}

// mergeTiers concatenates the tier lists, drops duplicate movieIds keeping
// the earliest occurrence, and truncates to the cold-start cap.
func mergeTiers(tiers ...[]models.Recommendation) []models.Recommendation {
	seen := make(map[int64]struct{})
	merged := make([]models.Recommendation, 0, coldStartCap)

	for _, tier := range tiers {
		for _, rec := range tier {
			if _, dup := seen[rec.MovieID]; dup {
				continue
			}
			seen[rec.MovieID] = struct{}{}
			merged = append(merged, rec)
			if len(merged) == coldStartCap {
				return merged
			}
		}
	}
	return merged
}
