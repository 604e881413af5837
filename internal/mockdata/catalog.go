// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package mockdata is the in-memory fallback catalog used whenever the graph
// database is unreachable. It replicates the filter, sort, search and
// pagination semantics of the live query layer over a fixed small catalog,
// guaranteeing parity of shape with live results, not parity of content.
package mockdata

import "github.com/rohansi4/moviegraph/internal/models"

// Movies is the static fallback catalog. Ratings use the canonical 0-5 scale.
// The slice is treated as read-only; helpers copy before sorting or slicing.
var Movies = []models.Movie{
	{MovieID: 1, Title: "The Shawshank Redemption", Genres: []string{"Drama"}, Year: 1994, AverageRating: 4.7, RatingCount: 317, TmdbID: 278},
	{MovieID: 2, Title: "The Godfather", Genres: []string{"Crime", "Drama"}, Year: 1972, AverageRating: 4.6, RatingCount: 201, TmdbID: 238},
	{MovieID: 3, Title: "The Dark Knight", Genres: []string{"Action", "Crime", "Drama"}, Year: 2008, AverageRating: 4.5, RatingCount: 280, TmdbID: 155},
	{MovieID: 4, Title: "Pulp Fiction", Genres: []string{"Crime", "Drama"}, Year: 1994, AverageRating: 4.4, RatingCount: 245, TmdbID: 680},
	{MovieID: 5, Title: "Inception", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Year: 2010, AverageRating: 4.4, RatingCount: 266, TmdbID: 27205},
	{MovieID: 6, Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}, Year: 1999, AverageRating: 4.3, RatingCount: 259, TmdbID: 603},
	{MovieID: 7, Title: "Forrest Gump", Genres: []string{"Comedy", "Drama", "Romance"}, Year: 1994, AverageRating: 4.2, RatingCount: 231, TmdbID: 13},
	{MovieID: 8, Title: "Interstellar", Genres: []string{"Adventure", "Drama", "Sci-Fi"}, Year: 2014, AverageRating: 4.3, RatingCount: 203, TmdbID: 157336},
	{MovieID: 9, Title: "Fight Club", Genres: []string{"Drama", "Thriller"}, Year: 1999, AverageRating: 4.3, RatingCount: 218, TmdbID: 550},
	{MovieID: 10, Title: "Goodfellas", Genres: []string{"Crime", "Drama"}, Year: 1990, AverageRating: 4.3, RatingCount: 171, TmdbID: 769},
	{MovieID: 11, Title: "The Silence of the Lambs", Genres: []string{"Crime", "Horror", "Thriller"}, Year: 1991, AverageRating: 4.2, RatingCount: 194, TmdbID: 274},
	{MovieID: 12, Title: "Blade Runner 2049", Genres: []string{"Drama", "Sci-Fi", "Thriller"}, Year: 2017, AverageRating: 4.0, RatingCount: 124, TmdbID: 335984},
	{MovieID: 13, Title: "Back to the Future", Genres: []string{"Adventure", "Comedy", "Sci-Fi"}, Year: 1985, AverageRating: 4.1, RatingCount: 186, TmdbID: 105},
	{MovieID: 14, Title: "Alien", Genres: []string{"Horror", "Sci-Fi"}, Year: 1979, AverageRating: 4.1, RatingCount: 158, TmdbID: 348},
	{MovieID: 15, Title: "The Grand Budapest Hotel", Genres: []string{"Comedy", "Drama"}, Year: 2014, AverageRating: 3.9, RatingCount: 112, TmdbID: 120467},
	{MovieID: 16, Title: "Mad Max: Fury Road", Genres: []string{"Action", "Adventure", "Sci-Fi"}, Year: 2015, AverageRating: 4.0, RatingCount: 131, TmdbID: 76341},
	{MovieID: 17, Title: "Spirited Away", Genres: []string{"Animation", "Adventure", "Fantasy"}, Year: 2001, AverageRating: 4.4, RatingCount: 143, TmdbID: 129},
	{MovieID: 18, Title: "Parasite", Genres: []string{"Comedy", "Drama", "Thriller"}, Year: 2019, AverageRating: 4.4, RatingCount: 109, TmdbID: 496243},
	{MovieID: 19, Title: "Arrival", Genres: []string{"Drama", "Mystery", "Sci-Fi"}, Year: 2016, AverageRating: 4.0, RatingCount: 118, TmdbID: 329865},
	{MovieID: 20, Title: "Knives Out", Genres: []string{"Comedy", "Crime", "Mystery"}, Year: 2019, AverageRating: 3.9, RatingCount: 97, TmdbID: 546554},
}

// Catalog returns a copy of the full mock catalog.
func Catalog() []models.Movie {
	out := make([]models.Movie, len(Movies))
	copy(out, Movies)
	return out
}

// ByID returns the mock movie with the given id, or false when absent.
func ByID(movieID int64) (models.Movie, bool) {
	for _, m := range Movies {
		if m.MovieID == movieID {
			return m, true
		}
	}
	return models.Movie{}, false
}

// Genres returns the distinct genres of the mock catalog in sorted order.
func Genres() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range Movies {
		for _, g := range m.Genres {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				out = append(out, g)
			}
		}
	}
	SortStrings(out)
	return out
}
