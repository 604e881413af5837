// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package catalog serves the movie browsing surface: paginated listing with
// filtering, sorting and search, single-movie lookup, and the genre index.
// Like the recommendation layer it degrades to the in-memory mock catalog
// when the graph is unavailable.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/mockdata"
)

// ListOptions are the catalog listing parameters. Zero values mean "not
// supplied"; the corresponding Cypher clause is omitted entirely rather than
// matched against a sentinel.
type ListOptions struct {
	Page      int
	Limit     int
	Genre     string
	Year      int
	MinRating float64
	MaxRating float64
	SortBy    string
	SortDesc  bool
	Search    string
}

// sortKeys whitelists ORDER BY expressions per sort key. The expression is
// interpolated into the query text, so only values from this map may ever
// reach the builder.
var sortKeys = map[string]string{
	mockdata.SortTitle:      "m.title",
	mockdata.SortYear:       "m.year",
	mockdata.SortRating:     "averageRating",
	mockdata.SortPopularity: "ratingCount",
}

// matchAndFilter builds the shared MATCH/WITH/WHERE prefix for the list and
// count queries. Aggregates are computed before filtering so rating
// thresholds apply to the read-time average.
func matchAndFilter(opts ListOptions) (string, map[string]any) {
	var b strings.Builder
	params := make(map[string]any)

	b.WriteString(`
MATCH (m:Movie)
OPTIONAL MATCH (m)<-[r:RATED]-()
WITH m, coalesce(avg(r.rating), 0.0) AS averageRating, count(r) AS ratingCount`)

	var conds []string
	if opts.Genre != "" {
		conds = append(conds, "any(g IN m.genres WHERE toLower(g) = toLower($genre))")
		params["genre"] = opts.Genre
	}
	if opts.Year > 0 {
		conds = append(conds, "m.year = $year")
		params["year"] = opts.Year
	}
	if opts.MinRating > 0 {
		conds = append(conds, "averageRating >= $minRating")
		params["minRating"] = opts.MinRating
	}
	if opts.MaxRating > 0 {
		conds = append(conds, "averageRating <= $maxRating")
		params["maxRating"] = opts.MaxRating
	}
	if opts.Search != "" {
		conds = append(conds,
			"(toLower(m.title) CONTAINS toLower($q) OR any(g IN m.genres WHERE toLower(g) CONTAINS toLower($q)))")
		params["q"] = opts.Search
	}

	if len(conds) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(conds, "\n  AND "))
	}

	return b.String(), params
}

// ListQuery builds the paginated listing query.
func ListQuery(opts ListOptions) graph.Query {
	prefix, params := matchAndFilter(opts)

	orderExpr, ok := sortKeys[opts.SortBy]
	if !ok {
		orderExpr = "m.title"
	}
	dir := "ASC"
	if opts.SortDesc {
		dir = "DESC"
	}

	params["skip"] = (opts.Page - 1) * opts.Limit
	params["limit"] = opts.Limit

	text := prefix + fmt.Sprintf(`
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId, averageRating, ratingCount
ORDER BY %s %s, m.movieId ASC
SKIP $skip
LIMIT $limit`,
		orderExpr, dir)

	return graph.Query{Text: text, Params: params}
}

// CountQuery builds the total-count query over the same filter set as
// ListQuery, for pagination metadata.
func CountQuery(opts ListOptions) graph.Query {
	prefix, params := matchAndFilter(opts)
	return graph.Query{
		Text:   prefix + "\nRETURN count(m) AS total",
		Params: params,
	}
}

// GetQuery builds the single-movie lookup with read-time aggregates.
func GetQuery(movieID int64) graph.Query {
	return graph.Query{
		Text: `
MATCH (m:Movie {movieId: $movieId})
OPTIONAL MATCH (m)<-[r:RATED]-()
RETURN m.movieId AS movieId, m.title AS title, m.genres AS genres,
       m.year AS year, m.tmdbId AS tmdbId,
       coalesce(avg(r.rating), 0.0) AS averageRating, count(r) AS ratingCount`,
		Params: map[string]any{"movieId": movieID},
	}
}

// GenresQuery builds the distinct-genre index query.
func GenresQuery() graph.Query {
	return graph.Query{
		Text: `
MATCH (m:Movie)
UNWIND m.genres AS genre
RETURN DISTINCT genre
ORDER BY genre`,
		Params: map[string]any{},
	}
}
