// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/chat"
	"github.com/rohansi4/moviegraph/internal/config"
	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/recommend"
	"github.com/rohansi4/moviegraph/internal/users"
)

// Server wires the services to the HTTP routes.
type Server struct {
	cfg     *config.Config
	exec    graph.Executor
	catalog *catalog.Service
	recs    *recommend.Service
	users   *users.Service
	chat    *chat.Service
}

// NewServer creates the HTTP server surface over the given services.
func NewServer(
	cfg *config.Config,
	exec graph.Executor,
	cat *catalog.Service,
	recs *recommend.Service,
	usr *users.Service,
	chatSvc *chat.Service,
) *Server {
	return &Server{
		cfg:     cfg,
		exec:    exec,
		catalog: cat,
		recs:    recs,
		users:   usr,
		chat:    chatSvc,
	}
}

// Router builds the chi route tree with the standard middleware stack.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Metrics)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5, "application/json"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if !s.cfg.Server.RateLimitDisabled {
		r.Use(httprate.LimitByIP(s.cfg.Server.RateLimitReqs, s.cfg.Server.RateLimitWindow))
	}

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/movies", s.handleListMovies)
		r.Get("/movies/{movieID}", s.handleGetMovie)
		r.Get("/genres", s.handleGenres)

		r.Get("/recommendations", s.handleRecommendationsByType)
		r.Post("/recommendations", s.handleDiscover)
		r.Get("/recommendations/{userID}", s.handleRecommendationsForUser)

		r.Get("/users", s.handleListUsers)
		r.Post("/users", s.handleCreateUser)
		r.Get("/users/{userID}", s.handleGetUser)
		r.Post("/users/{userID}/preferences", s.handleSavePreferences)
		r.Get("/users/{userID}/ratings", s.handleListRatings)
		r.Post("/users/{userID}/ratings", s.handleRate)
		r.Get("/users/{userID}/watchlist", s.handleWatchlist)
		r.Post("/users/{userID}/watchlist", s.handleWatchlistAdd)
		r.Delete("/users/{userID}/watchlist/{movieID}", s.handleWatchlistRemove)

		r.Post("/chat", s.handleChat)
	})

	return r
}
