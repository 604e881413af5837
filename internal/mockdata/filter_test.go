// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohansi4/moviegraph/internal/models"
)

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	results := Search(Movies, "DARK")

	require.NotEmpty(t, results)
	found := false
	for _, m := range results {
		if m.Title == "The Dark Knight" {
			found = true
		}
	}
	assert.True(t, found, "searching DARK must return The Dark Knight")
}

func TestSearchMatchesGenres(t *testing.T) {
	results := Search(Movies, "sci-fi")

	require.NotEmpty(t, results)
	for _, m := range results {
		assert.True(t, hasGenre(m, "Sci-Fi"), "movie %q matched without Sci-Fi genre", m.Title)
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		check  func(t *testing.T, got []models.Movie)
	}{
		{
			name:   "genre filter is exact and case-insensitive",
			filter: Filter{Genre: "crime"},
			check: func(t *testing.T, got []models.Movie) {
				require.NotEmpty(t, got)
				for _, m := range got {
					assert.True(t, hasGenre(m, "Crime"))
				}
			},
		},
		{
			name:   "year range",
			filter: Filter{MinYear: 2010, MaxYear: 2016},
			check: func(t *testing.T, got []models.Movie) {
				require.NotEmpty(t, got)
				for _, m := range got {
					assert.GreaterOrEqual(t, m.Year, 2010)
					assert.LessOrEqual(t, m.Year, 2016)
				}
			},
		},
		{
			name:   "rating floor",
			filter: Filter{MinRating: 4.4},
			check: func(t *testing.T, got []models.Movie) {
				require.NotEmpty(t, got)
				for _, m := range got {
					assert.GreaterOrEqual(t, m.AverageRating, 4.4)
				}
			},
		},
		{
			name:   "no criteria matches everything",
			filter: Filter{},
			check: func(t *testing.T, got []models.Movie) {
				assert.Len(t, got, len(Movies))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.filter.Apply(Movies))
		})
	}
}

func TestSortMovies(t *testing.T) {
	byYear := SortMovies(Movies, SortYear, false)
	for i := 1; i < len(byYear); i++ {
		assert.LessOrEqual(t, byYear[i-1].Year, byYear[i].Year)
	}

	byRatingDesc := SortMovies(Movies, SortRating, true)
	for i := 1; i < len(byRatingDesc); i++ {
		assert.GreaterOrEqual(t, byRatingDesc[i-1].AverageRating, byRatingDesc[i].AverageRating)
	}

	// Input order is untouched.
	assert.Equal(t, int64(1), Movies[0].MovieID)
}

func TestPaginateMatchesManualSlice(t *testing.T) {
	movies := SortMovies(Movies, SortTitle, false)

	page, info := Paginate(movies, 2, 8)

	require.Equal(t, movies[8:16], page)
	assert.Equal(t, int64(len(movies)), info.Total)
	assert.Equal(t, 16 < len(movies), info.HasMore)
}

func TestPaginateBeyondEnd(t *testing.T) {
	page, info := Paginate(Movies, 99, 20)

	assert.Empty(t, page)
	assert.False(t, info.HasMore)
}

func TestFallbackRecommendationsIsFixedThree(t *testing.T) {
	recs := FallbackRecommendations()

	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.NotEmpty(t, r.Title)
		assert.NotZero(t, r.MovieID)
	}
}

func TestPopularRespectsLimit(t *testing.T) {
	recs := Popular(5)

	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestByGenres(t *testing.T) {
	recs := ByGenres([]string{"Sci-Fi"}, 4)

	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 4)
	for _, r := range recs {
		assert.True(t, hasGenre(r.Movie, "Sci-Fi"))
	}
}
