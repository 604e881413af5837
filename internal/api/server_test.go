// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/chat"
	"github.com/rohansi4/moviegraph/internal/config"
	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/recommend"
	"github.com/rohansi4/moviegraph/internal/users"
)

// downExecutor simulates an unreachable graph database.
type downExecutor struct{}

func (downExecutor) Run(context.Context, string, map[string]any) ([]graph.Record, error) {
	return nil, errors.New("connection refused")
}
func (downExecutor) VerifyConnectivity(context.Context) error { return errors.New("connection refused") }
func (downExecutor) Close(context.Context) error              { return nil }

func newTestServer(exec graph.Executor) *Server {
	cfg := config.Default()
	cfg.Server.RateLimitDisabled = true

	cat := catalog.NewService(exec, nil, cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	recs := recommend.NewService(exec, nil, cfg.API.DefaultRecLimit, cfg.API.MaxRecLimit)
	usr := users.NewService(exec)
	chatSvc := chat.NewService(recs, cat)

	return NewServer(cfg, exec, cat, recs, usr, chatSvc)
}

func doRequest(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestListMoviesDatabaseDownServesMockWithNote(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/movies?q=dark", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, models.SourceMock, env.Metadata.Source)
	assert.Equal(t, models.MockDataNote, env.Metadata.Note)
}

func TestGetMovieRejectsNonIntegerID(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/movies/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGetMovieNotFoundInMockEither(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/movies/999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRecommendationsForUserNeverFiveHundreds(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/u-1?limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, models.SourceMock, env.Metadata.Source)
	assert.Equal(t, models.MockDataNote, env.Metadata.Note)

	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var data models.RecommendationData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Len(t, data.Recommendations, 3)
	assert.Equal(t, 3, data.TotalRecommendations)
}

func TestRecommendationsByTypeRequiresUserForPersonalized(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?type=collaborative", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)

	rec, _ = doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?type=popular", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDiscoverValidatesBody(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations",
		`{"minRating": 9.5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "minRating")
}

func TestCreateUserValidation(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/users", `{"username": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "username")
}

func TestCreateUserDatabaseDownSurfacesError(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/users", `{"username": "alice"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "QUERY_ERROR", env.Error.Code)
}

func TestChatGreetingWorksWithoutDatabase(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/chat",
		`{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
}

func TestHealthReportsDatabaseState(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, env := doRequest(t, srv, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	raw, _ := json.Marshal(env.Data)
	assert.Contains(t, string(raw), "unavailable")
}

func TestResponsesCarryRequestID(t *testing.T) {
	srv := newTestServer(downExecutor{})

	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/genres", "")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
