// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/models"
)

type fakeExecutor struct {
	routes []fakeRoute
	err    error
}

type fakeRoute struct {
	contains string
	rows     []graph.Record
}

func (f *fakeExecutor) Run(_ context.Context, query string, _ map[string]any) ([]graph.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.routes {
		if strings.Contains(query, r.contains) {
			return r.rows, nil
		}
	}
	return nil, nil
}

func (f *fakeExecutor) VerifyConnectivity(context.Context) error { return f.err }
func (f *fakeExecutor) Close(context.Context) error              { return nil }

func TestListQueryBuildsConditionalClauses(t *testing.T) {
	q := ListQuery(ListOptions{Page: 1, Limit: 20, Genre: "Crime", MinRating: 4.0, SortBy: "rating", SortDesc: true})

	assert.Contains(t, q.Text, "toLower(g) = toLower($genre)")
	assert.Contains(t, q.Text, "averageRating >= $minRating")
	assert.Contains(t, q.Text, "ORDER BY averageRating DESC")
	assert.NotContains(t, q.Text, "$year")
	assert.Equal(t, 0, q.Params["skip"])
	assert.Equal(t, 20, q.Params["limit"])
}

func TestListQueryDefaultsUnknownSortToTitle(t *testing.T) {
	q := ListQuery(ListOptions{Page: 1, Limit: 10, SortBy: "bogus"})

	assert.Contains(t, q.Text, "ORDER BY m.title ASC")
	assert.NotContains(t, q.Text, "WHERE")
}

func TestCountQuerySharesFilters(t *testing.T) {
	opts := ListOptions{Search: "dark"}

	lq, cq := ListQuery(opts), CountQuery(opts)
	assert.Contains(t, cq.Text, "CONTAINS toLower($q)")
	assert.Contains(t, lq.Text, "CONTAINS toLower($q)")
	assert.Contains(t, cq.Text, "count(m) AS total")
	assert.NotContains(t, cq.Text, "SKIP")
}

func TestListRunsResultsAndCountTogether(t *testing.T) {
	exec := &fakeExecutor{routes: []fakeRoute{
		{contains: "count(m) AS total", rows: []graph.Record{{"total": int64(42)}}},
		{contains: "SKIP $skip", rows: []graph.Record{
			{"movieId": int64(3), "title": "The Dark Knight (2008)", "genres": []any{"Action", "Crime"},
				"year": int64(2008), "tmdbId": int64(155), "averageRating": 4.5, "ratingCount": int64(900)},
		}},
	}}

	svc := NewService(exec, nil, 20, 100)
	res := svc.List(context.Background(), ListOptions{Page: 1, Limit: 20})

	assert.Equal(t, models.SourceLive, res.Source)
	require.Len(t, res.Movies, 1)
	assert.Equal(t, "The Dark Knight", res.Movies[0].Title)
	assert.Equal(t, 2008, res.Movies[0].Year)
	assert.Equal(t, int64(42), res.Page.Total)
	assert.Equal(t, 3, res.Page.TotalPages)
	assert.True(t, res.Page.HasMore)
}

func TestListDatabaseDownFallsBackToMockWithSameSemantics(t *testing.T) {
	svc := NewService(&fakeExecutor{err: errors.New("refused")}, nil, 20, 100)

	res := svc.List(context.Background(), ListOptions{Search: "dark", Page: 1, Limit: 20})

	assert.Equal(t, models.SourceMock, res.Source)
	assert.Equal(t, models.MockDataNote, res.Note)
	require.NotEmpty(t, res.Movies)
	found := false
	for _, m := range res.Movies {
		if m.Title == "The Dark Knight" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetReturnsNotFoundForMissingMovie(t *testing.T) {
	svc := NewService(&fakeExecutor{}, nil, 20, 100)

	_, err := svc.Get(context.Background(), 123456)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFallsBackToMockCatalog(t *testing.T) {
	svc := NewService(&fakeExecutor{err: errors.New("down")}, nil, 20, 100)

	res, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.SourceMock, res.Source)
	assert.Equal(t, "The Dark Knight", res.Movie.Title)

	_, err = svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenresFallback(t *testing.T) {
	svc := NewService(&fakeExecutor{err: errors.New("down")}, nil, 20, 100)

	res := svc.Genres(context.Background())
	assert.Equal(t, models.SourceMock, res.Source)
	assert.NotEmpty(t, res.Genres)
}

func TestNormalizeBoundsPaging(t *testing.T) {
	svc := NewService(&fakeExecutor{}, nil, 20, 100)

	opts := svc.normalize(ListOptions{Page: -1, Limit: 500, SortBy: "wat"})
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 100, opts.Limit)
	assert.Equal(t, "title", opts.SortBy)
}
