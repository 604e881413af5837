// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package catalog

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/logging"
	"github.com/rohansi4/moviegraph/internal/metrics"
	"github.com/rohansi4/moviegraph/internal/mockdata"
	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/tmdb"
)

// ErrNotFound is returned by Get when no movie has the requested id in
// either the graph or the mock catalog.
var ErrNotFound = errors.New("movie not found")

// ListResult is a completed listing request.
type ListResult struct {
	Movies []models.Movie
	Page   models.PageInfo
	Source string
	Note   string
}

// MovieResult is a completed single-movie lookup.
type MovieResult struct {
	Movie  models.Movie
	Source string
	Note   string
}

// GenresResult is a completed genre-index request.
type GenresResult struct {
	Genres []string
	Source string
	Note   string
}

// Service serves catalog reads with a mock fallback mirroring the
// recommendation service's degradation policy.
type Service struct {
	exec        graph.Executor
	posters     *tmdb.Resolver
	defaultPage int
	maxPage     int
}

// NewService creates a catalog service. posters may be nil.
func NewService(exec graph.Executor, posters *tmdb.Resolver, defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &Service{exec: exec, posters: posters, defaultPage: defaultPageSize, maxPage: maxPageSize}
}

// List returns one page of movies matching the options. The page of results
// and the total count run as parallel queries.
func (s *Service) List(ctx context.Context, opts ListOptions) ListResult {
	opts = s.normalize(opts)

	var (
		rows  []graph.Record
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.run(gctx, "catalog_list", ListQuery(opts))
		return err
	})
	g.Go(func() error {
		countRows, err := s.run(gctx, "catalog_count", CountQuery(opts))
		if err != nil {
			return err
		}
		if len(countRows) > 0 {
			total = countRows[0].Int("total")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return s.listFallback(opts, err)
	}

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, rowToMovie(row))
	}
	s.resolvePosters(ctx, movies)

	return ListResult{
		Movies: movies,
		Page:   models.NewPageInfo(opts.Page, opts.Limit, total),
		Source: models.SourceLive,
	}
}

// Get returns one movie by id. Database unavailability degrades to the mock
// catalog; a miss in both is ErrNotFound.
func (s *Service) Get(ctx context.Context, movieID int64) (MovieResult, error) {
	rows, err := s.run(ctx, "catalog_get", GetQuery(movieID))
	if err != nil {
		metrics.RecordFallback("movie_detail")
		m, ok := mockdata.ByID(movieID)
		if !ok {
			return MovieResult{}, ErrNotFound
		}
		return MovieResult{Movie: m, Source: models.SourceMock, Note: models.MockDataNote}, nil
	}

	if len(rows) == 0 || rows[0].Int("movieId") == 0 {
		return MovieResult{}, ErrNotFound
	}

	movie := rowToMovie(rows[0])
	if s.posters != nil {
		movie.PosterURL = s.posters.PosterURL(ctx, movie.MovieID, movie.TmdbID, movie.Title)
	}

	return MovieResult{Movie: movie, Source: models.SourceLive}, nil
}

// Genres returns the sorted distinct genre index.
func (s *Service) Genres(ctx context.Context) GenresResult {
	rows, err := s.run(ctx, "catalog_genres", GenresQuery())
	if err != nil {
		metrics.RecordFallback("genres")
		return GenresResult{Genres: mockdata.Genres(), Source: models.SourceMock, Note: models.MockDataNote}
	}

	genres := make([]string, 0, len(rows))
	for _, row := range rows {
		if g := row.String("genre"); g != "" {
			genres = append(genres, g)
		}
	}

	return GenresResult{Genres: genres, Source: models.SourceLive}
}

// listFallback computes the listing over the mock catalog with the same
// filter, search, sort and pagination semantics as the live query.
func (s *Service) listFallback(opts ListOptions, cause error) ListResult {
	metrics.RecordFallback("movies")
	logging.Info().Err(cause).Msg("serving mock movie listing")

	movies := mockdata.Catalog()
	if opts.Search != "" {
		movies = mockdata.Search(movies, opts.Search)
	}
	movies = mockdata.Filter{
		Genre:     opts.Genre,
		Year:      opts.Year,
		MinRating: opts.MinRating,
		MaxRating: opts.MaxRating,
	}.Apply(movies)
	movies = mockdata.SortMovies(movies, opts.SortBy, opts.SortDesc)

	page, info := mockdata.Paginate(movies, opts.Page, opts.Limit)
	return ListResult{
		Movies: page,
		Page:   info,
		Source: models.SourceMock,
		Note:   models.MockDataNote,
	}
}

func (s *Service) run(ctx context.Context, operation string, q graph.Query) ([]graph.Record, error) {
	start := time.Now()
	rows, err := s.exec.Run(ctx, q.Text, q.Params)
	metrics.ObserveQuery(operation, time.Since(start))
	if err != nil {
		logging.Warn().Err(err).Str("operation", operation).Msg("graph query failed")
		return nil, err
	}
	return rows, nil
}

// resolvePosters fills PosterURL for a page of movies, a few lookups at a
// time.
func (s *Service) resolvePosters(ctx context.Context, movies []models.Movie) {
	if s.posters == nil {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range movies {
		i := i
		g.Go(func() error {
			m := &movies[i]
			m.PosterURL = s.posters.PosterURL(ctx, m.MovieID, m.TmdbID, m.Title)
			return nil
		})
	}
	_ = g.Wait()
}

// normalize applies paging defaults and bounds.
func (s *Service) normalize(opts ListOptions) ListOptions {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = s.defaultPage
	}
	if opts.Limit > s.maxPage {
		opts.Limit = s.maxPage
	}
	if _, ok := sortKeys[opts.SortBy]; !ok {
		opts.SortBy = mockdata.SortTitle
	}
	return opts
}

// rowToMovie projects a catalog query row onto a Movie, preferring the year
// column over the "(YYYY)" title suffix.
func rowToMovie(row graph.Record) models.Movie {
	title, suffixYear := models.TitleYear(row.String("title"))

	year := int(row.Int("year"))
	if year == 0 {
		year = suffixYear
	}

	return models.Movie{
		MovieID:       row.Int("movieId"),
		Title:         title,
		Genres:        row.Strings("genres"),
		Year:          year,
		AverageRating: row.Float("averageRating"),
		RatingCount:   row.Int("ratingCount"),
		TmdbID:        row.Int("tmdbId"),
	}
}
