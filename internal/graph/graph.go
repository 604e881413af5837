// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package graph provides the graph-query execution interface consumed by the
// recommendation and catalog layers, plus its Neo4j implementation.
//
// The executor is an injected dependency with an explicit lifecycle:
// constructed once at process start, passed by reference to the services that
// need it, closed on shutdown. Callers never manage connection pooling or
// retries; a failed query fails once and the caller decides whether to fall
// back to mock data.
package graph

import (
	"context"
	"errors"
)

// ErrNotConnected is returned by Run when the executor has no usable
// database connection. Callers treat it like any other query error and
// substitute mock data.
var ErrNotConnected = errors.New("graph: not connected")

// Query pairs a Cypher query string with its parameter bindings.
type Query struct {
	Text   string
	Params map[string]any
}

// Executor runs parameterized Cypher queries and returns rows of key->value
// records.
type Executor interface {
	// Run executes a single query and collects all result rows.
	Run(ctx context.Context, query string, params map[string]any) ([]Record, error)

	// VerifyConnectivity probes the database connection.
	VerifyConnectivity(ctx context.Context) error

	// Close releases the underlying driver.
	Close(ctx context.Context) error
}
