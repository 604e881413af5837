// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/recommend"
)

type fakeRecommender struct {
	forUserCalls  int
	byTypeCalls   []string
	discoverCalls []recommend.DiscoverRequest
	result        recommend.Result
}

func (f *fakeRecommender) ForUser(_ context.Context, _ string, _ int) recommend.Result {
	f.forUserCalls++
	return f.result
}

func (f *fakeRecommender) ByType(_ context.Context, _ string, typ string, _ int) recommend.Result {
	f.byTypeCalls = append(f.byTypeCalls, typ)
	return f.result
}

func (f *fakeRecommender) Discover(_ context.Context, req recommend.DiscoverRequest) recommend.Result {
	f.discoverCalls = append(f.discoverCalls, req)
	return f.result
}

type fakeBrowser struct {
	result catalog.ListResult
}

func (f *fakeBrowser) List(context.Context, catalog.ListOptions) catalog.ListResult {
	return f.result
}

func rec(id int64, title string) models.Recommendation {
	return models.Recommendation{Movie: models.Movie{MovieID: id, Title: title, Genres: []string{"Sci-Fi"}}}
}

func TestRespondGreetingNeedsNoBackend(t *testing.T) {
	recs := &fakeRecommender{}
	svc := NewService(recs, &fakeBrowser{})

	res := svc.Respond(context.Background(), "u-1", "hello")

	assert.Equal(t, string(IntentGreeting), res.Intent)
	assert.NotEmpty(t, res.Reply)
	assert.Empty(t, res.Movies)
	assert.Zero(t, recs.forUserCalls)
}

func TestRespondGenreUsesDiscover(t *testing.T) {
	recs := &fakeRecommender{result: recommend.Result{
		Recommendations: []models.Recommendation{rec(6, "The Matrix")},
		Source:          models.SourceLive,
	}}
	svc := NewService(recs, &fakeBrowser{})

	res := svc.Respond(context.Background(), "u-1", "best sci-fi movies")

	require.Len(t, recs.discoverCalls, 1)
	assert.Equal(t, []string{"Sci-Fi"}, recs.discoverCalls[0].Genres)
	assert.Equal(t, string(IntentGenre), res.Intent)
	require.Len(t, res.Movies, 1)
}

func TestRespondRecommendWithoutUserFallsBackToPopular(t *testing.T) {
	recs := &fakeRecommender{result: recommend.Result{Source: models.SourceLive}}
	svc := NewService(recs, &fakeBrowser{})

	svc.Respond(context.Background(), "", "recommend me something")

	assert.Equal(t, []string{string(recommend.StrategyPopular)}, recs.byTypeCalls)
	assert.Zero(t, recs.forUserCalls)
}

func TestRespondSimilarExcludesAnchor(t *testing.T) {
	recs := &fakeRecommender{result: recommend.Result{
		Recommendations: []models.Recommendation{rec(6, "The Matrix"), rec(5, "Inception"), rec(8, "Interstellar")},
		Source:          models.SourceLive,
	}}
	browser := &fakeBrowser{result: catalog.ListResult{
		Movies: []models.Movie{{MovieID: 6, Title: "The Matrix", Genres: []string{"Sci-Fi"}}},
		Source: models.SourceLive,
	}}
	svc := NewService(recs, browser)

	res := svc.Respond(context.Background(), "u-1", "movies like The Matrix")

	require.Len(t, res.Movies, 2)
	for _, m := range res.Movies {
		assert.NotEqual(t, int64(6), m.MovieID, "the anchor movie must not recommend itself")
	}
}

func TestRespondSimilarUnknownTitle(t *testing.T) {
	svc := NewService(&fakeRecommender{}, &fakeBrowser{result: catalog.ListResult{Source: models.SourceLive}})

	res := svc.Respond(context.Background(), "u-1", "movies like Zorblax Nine")

	assert.Contains(t, res.Reply, "Zorblax Nine")
	assert.Empty(t, res.Movies)
}

func TestRespondCarriesMockNote(t *testing.T) {
	recs := &fakeRecommender{result: recommend.Result{
		Recommendations: []models.Recommendation{rec(1, "The Shawshank Redemption")},
		Source:          models.SourceMock,
		Note:            models.MockDataNote,
	}}
	svc := NewService(recs, &fakeBrowser{})

	res := svc.Respond(context.Background(), "u-1", "what's popular?")

	assert.Equal(t, models.SourceMock, res.Source)
	assert.Equal(t, models.MockDataNote, res.Note)
}
