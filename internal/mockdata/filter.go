// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package mockdata

import (
	"sort"
	"strings"

	"github.com/rohansi4/moviegraph/internal/models"
)

// Filter narrows a movie list by exact genre, year and rating bounds.
// Zero-valued criteria are skipped.
type Filter struct {
	Genre     string
	Genres    []string
	Year      int
	MinYear   int
	MaxYear   int
	MinRating float64
	MaxRating float64
}

// Apply returns the movies matching every non-zero criterion.
func (f Filter) Apply(movies []models.Movie) []models.Movie {
	out := make([]models.Movie, 0, len(movies))

	for _, m := range movies {
		if f.Genre != "" && !hasGenre(m, f.Genre) {
			continue
		}
		if len(f.Genres) > 0 && !hasAnyGenre(m, f.Genres) {
			continue
		}
		if f.Year != 0 && m.Year != f.Year {
			continue
		}
		if f.MinYear != 0 && m.Year < f.MinYear {
			continue
		}
		if f.MaxYear != 0 && m.Year > f.MaxYear {
			continue
		}
		if f.MinRating != 0 && m.AverageRating < f.MinRating {
			continue
		}
		if f.MaxRating != 0 && m.AverageRating > f.MaxRating {
			continue
		}
		out = append(out, m)
	}

	return out
}

func hasGenre(m models.Movie, genre string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

func hasAnyGenre(m models.Movie, genres []string) bool {
	for _, g := range genres {
		if hasGenre(m, g) {
			return true
		}
	}
	return false
}

// Search returns movies whose title or any genre contains the query,
// case-insensitively. An empty query matches everything.
func Search(movies []models.Movie, query string) []models.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return movies
	}

	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
			continue
		}
		for _, g := range m.Genres {
			if strings.Contains(strings.ToLower(g), q) {
				out = append(out, m)
				break
			}
		}
	}

	return out
}

// Sort keys accepted by SortMovies. Unknown keys fall back to title order.
const (
	SortTitle      = "title"
	SortYear       = "year"
	SortRating     = "rating"
	SortPopularity = "popularity"
)

// SortMovies orders movies by the given key. desc reverses the order.
// Ties break on MovieID for a stable, reproducible order.
func SortMovies(movies []models.Movie, key string, desc bool) []models.Movie {
	out := make([]models.Movie, len(movies))
	copy(out, movies)

	less := func(a, b models.Movie) bool {
		switch key {
		case SortYear:
			if a.Year != b.Year {
				return a.Year < b.Year
			}
		case SortRating:
			if a.AverageRating != b.AverageRating {
				return a.AverageRating < b.AverageRating
			}
		case SortPopularity:
			if a.RatingCount != b.RatingCount {
				return a.RatingCount < b.RatingCount
			}
		default:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		}
		return a.MovieID < b.MovieID
	}

	sort.Slice(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// Paginate slices a page out of movies. Page numbering starts at 1.
// hasMore is true iff the end index is strictly below the total, so
// Paginate(movies, 2, 20) returns exactly movies[20:40].
func Paginate(movies []models.Movie, page, limit int) ([]models.Movie, models.PageInfo) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(movies)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return movies[start:end], models.NewPageInfo(page, limit, int64(total))
}

// SortStrings sorts a string slice in place (tiny wrapper so catalog.go does
// not import sort directly).
func SortStrings(s []string) {
	sort.Strings(s)
}
