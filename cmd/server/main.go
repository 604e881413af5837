// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package main is the MovieGraph server entry point.
//
// MovieGraph serves movie browsing and recommendation APIs backed by a Neo4j
// graph of movies, users, ratings and declared preferences. The process
// starts in this order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, config.yaml,
//     MOVIEGRAPH_* environment variables plus a few flat aliases)
//  2. Logging: zerolog, json or console format
//  3. Graph driver: Neo4j driver constructed once and injected into the
//     services; a failed connectivity probe is logged, not fatal, because
//     every read endpoint degrades to the mock catalog
//  4. Services: catalog, recommendations, users, chat, poster resolution
//  5. HTTP server: chi router under a Suture supervisor
//
// Shutdown on SIGINT/SIGTERM drains in-flight requests within the configured
// timeout, then closes the driver.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohansi4/moviegraph/internal/api"
	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/chat"
	"github.com/rohansi4/moviegraph/internal/config"
	"github.com/rohansi4/moviegraph/internal/graph"
	"github.com/rohansi4/moviegraph/internal/logging"
	"github.com/rohansi4/moviegraph/internal/recommend"
	"github.com/rohansi4/moviegraph/internal/supervisor"
	"github.com/rohansi4/moviegraph/internal/tmdb"
	"github.com/rohansi4/moviegraph/internal/users"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec, err := graph.NewNeo4j(graph.Neo4jOptions{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return fmt.Errorf("constructing neo4j driver: %w", err)
	}
	defer func() {
		if err := exec.Close(context.Background()); err != nil {
			logging.Warn().Err(err).Msg("closing neo4j driver")
		}
	}()

	// A down database is not fatal: reads degrade to the mock catalog and
	// the health endpoint reports the state.
	if err := exec.VerifyConnectivity(ctx); err != nil {
		logging.Warn().Err(err).Str("uri", cfg.Neo4j.URI).
			Msg("graph database unreachable, serving mock data until it recovers")
	} else {
		logging.Info().Str("uri", cfg.Neo4j.URI).Msg("graph database connected")
	}

	posters := tmdb.NewResolver(tmdb.Options{
		APIKey:    cfg.TMDB.APIKey,
		BaseURL:   cfg.TMDB.BaseURL,
		ImageBase: cfg.TMDB.ImageBase,
		Timeout:   cfg.TMDB.Timeout,
	})

	cat := catalog.NewService(exec, posters, cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	recs := recommend.NewService(exec, posters, cfg.API.DefaultRecLimit, cfg.API.MaxRecLimit)
	usr := users.NewService(exec)
	chatSvc := chat.NewService(recs, cat)

	server := api.NewServer(cfg, exec, cat, recs, usr, chatSvc)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPService(httpServer, cfg.Server.ShutdownTimeout))

	logging.Info().
		Int("port", cfg.Server.Port).
		Str("log_level", cfg.Logging.Level).
		Msg("moviegraph starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Info().Msg("moviegraph stopped")
	return nil
}
