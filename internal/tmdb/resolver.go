// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package tmdb resolves movie poster URLs through a three-tier fallback
// chain: TMDB lookup by tmdbId, a curated static map, then a generated
// placeholder. Resolution never fails for a movie with a non-empty title.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/rohansi4/moviegraph/internal/logging"
)

// Options configures the resolver.
type Options struct {
	// APIKey authenticates against the TMDB API. When empty, the TMDB tier
	// is skipped entirely and no outbound calls are made.
	APIKey string

	// BaseURL is the TMDB API root, default https://api.themoviedb.org/3.
	BaseURL string

	// ImageBase is the poster image root, default
	// https://image.tmdb.org/t/p/w342.
	ImageBase string

	// Timeout bounds each TMDB lookup.
	Timeout time.Duration

	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// Resolver resolves poster URLs. There is no caching layer; repeated calls
// for the same movie re-fetch from TMDB.
type Resolver struct {
	apiKey    string
	baseURL   string
	imageBase string
	client    *http.Client
}

// NewResolver creates a poster resolver.
func NewResolver(opts Options) *Resolver {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.themoviedb.org/3"
	}
	if opts.ImageBase == "" {
		opts.ImageBase = "https://image.tmdb.org/t/p/w342"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &Resolver{
		apiKey:    opts.APIKey,
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		imageBase: strings.TrimSuffix(opts.ImageBase, "/"),
		client:    client,
	}
}

// PosterURL resolves a poster URL for a movie. The tiers are tried in order;
// the placeholder tier always succeeds, so the result is never empty for a
// non-empty title.
func (r *Resolver) PosterURL(ctx context.Context, movieID, tmdbID int64, title string) string {
	if u := r.fromTMDB(ctx, tmdbID); u != "" {
		return u
	}
	if u, ok := curatedPosters[movieID]; ok {
		return u
	}
	return placeholderURL(movieID, title)
}

// movieDetails is the subset of the TMDB movie payload we read.
type movieDetails struct {
	PosterPath string `json:"poster_path"`
}

// fromTMDB looks up the poster path by tmdbId. Errors degrade to "" so the
// next tier applies; there is no retry.
func (r *Resolver) fromTMDB(ctx context.Context, tmdbID int64) string {
	if r.apiKey == "" || tmdbID <= 0 {
		return ""
	}

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", r.baseURL, tmdbID, url.QueryEscape(r.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := r.client.Do(req)
	if err != nil {
		logging.Debug().Err(err).Int64("tmdb_id", tmdbID).Msg("tmdb poster lookup failed")
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var details movieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return ""
	}

	if details.PosterPath == "" {
		return ""
	}

	return r.imageBase + details.PosterPath
}
