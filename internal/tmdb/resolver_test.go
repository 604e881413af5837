// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPosterURLUsesTMDBWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/movie/155") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"poster_path": "/qJ2tW6WMUDux911r6m7haRef0WH.jpg"}`))
	}))
	defer srv.Close()

	r := NewResolver(Options{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		ImageBase: "https://image.tmdb.org/t/p/w342",
		Client:    srv.Client(),
	})

	got := r.PosterURL(context.Background(), 3, 155, "The Dark Knight")
	want := "https://image.tmdb.org/t/p/w342/qJ2tW6WMUDux911r6m7haRef0WH.jpg"
	if got != want {
		t.Errorf("PosterURL() = %q, want %q", got, want)
	}
}

func TestPosterURLFallsBackToCuratedMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewResolver(Options{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()})

	got := r.PosterURL(context.Background(), 3, 155, "The Dark Knight")
	if got != curatedPosters[3] {
		t.Errorf("PosterURL() = %q, want curated entry %q", got, curatedPosters[3])
	}
}

func TestPosterURLNeverEmpty(t *testing.T) {
	// No API key, no tmdbId, no curated entry: the placeholder tier must
	// still produce a URL.
	r := NewResolver(Options{})

	tests := []struct {
		name    string
		movieID int64
		title   string
	}{
		{"unknown movie", 9999, "Obscure Indie Film"},
		{"empty title", 42, ""},
		{"negative id", -7, "Weird Import"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.PosterURL(context.Background(), tt.movieID, 0, tt.title)
			if got == "" {
				t.Fatal("PosterURL() returned empty string")
			}
			if !strings.HasPrefix(got, "https://") {
				t.Errorf("PosterURL() = %q, want https URL", got)
			}
		})
	}
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	a := placeholderURL(5, "Inception")
	b := placeholderURL(5, "Inception")
	if a != b {
		t.Errorf("placeholder not deterministic: %q vs %q", a, b)
	}

	c := placeholderURL(6, "Inception")
	if a == c {
		t.Error("different movieIds should pick different palette slots")
	}
}

func TestFromTMDBSkipsWithoutKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	r := NewResolver(Options{BaseURL: srv.URL, Client: srv.Client()})
	if got := r.fromTMDB(context.Background(), 155); got != "" {
		t.Errorf("fromTMDB() = %q, want empty without API key", got)
	}
	if called {
		t.Error("no outbound call should be made without an API key")
	}
}
