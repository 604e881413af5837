// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Neo4j implements Executor against a Neo4j database.
//
// Sessions are scoped per query call (open, run, collect, close). This bounds
// resource lifetime correctly at the cost of session reuse across a batch.
type Neo4j struct {
	driver neo4j.DriverWithContext
	db     string
}

// Neo4jOptions configures the Neo4j executor.
type Neo4jOptions struct {
	URI      string
	Username string
	Password string

	// Database selects a named database; empty uses the server default.
	Database string
}

// NewNeo4j creates a Neo4j executor. The driver is created eagerly but the
// connection is not verified; call VerifyConnectivity to probe it.
func NewNeo4j(opts Neo4jOptions) (*Neo4j, error) {
	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(opts.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("graph: failed to create driver: %w", err)
	}

	return &Neo4j{
		driver: driver,
		db:     opts.Database,
	}, nil
}

// Run executes a single Cypher query in a fresh session and collects all
// result rows. Node and relationship values are flattened so their properties
// are accessible as "alias.property" keys.
func (n *Neo4j) Run(ctx context.Context, query string, params map[string]any) ([]Record, error) {
	if n.driver == nil {
		return nil, ErrNotConnected
	}

	sessionCfg := neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite}
	if n.db != "" {
		sessionCfg.DatabaseName = n.db
	}

	session := n.driver.NewSession(ctx, sessionCfg)
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("graph: query execution failed: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("graph: failed to collect results: %w", err)
	}

	rows := make([]Record, len(records))
	for i, record := range records {
		rows[i] = flattenRecord(record.Keys, record.Values)
	}

	return rows, nil
}

// VerifyConnectivity probes the database connection.
func (n *Neo4j) VerifyConnectivity(ctx context.Context) error {
	if n.driver == nil {
		return ErrNotConnected
	}

	if err := n.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("graph: connectivity check failed: %w", err)
	}

	return nil
}

// Close releases the underlying driver.
func (n *Neo4j) Close(ctx context.Context) error {
	if n.driver == nil {
		return nil
	}

	if err := n.driver.Close(ctx); err != nil {
		return fmt.Errorf("graph: failed to close driver: %w", err)
	}

	return nil
}

// flattenRecord converts a Neo4j record into a flat Record.
// Nodes and relationships are expanded so their properties are accessible
// as "alias.property" (e.g. m.title, r.rating).
func flattenRecord(keys []string, values []any) Record {
	result := make(Record, len(keys))

	for i, key := range keys {
		flattenValue(result, key, values[i])
	}

	return result
}

func flattenValue(result Record, key string, value any) {
	switch v := value.(type) {
	case dbtype.Node:
		for prop, propVal := range v.Props {
			result[key+"."+prop] = propVal
		}
		result[key+".labels"] = v.Labels

	case dbtype.Relationship:
		for prop, propVal := range v.Props {
			result[key+"."+prop] = propVal
		}
		result[key+".type"] = v.Type

	case map[string]any:
		for k, val := range v {
			result[key+"."+k] = val
		}

	default:
		result[key] = v
	}
}

var _ Executor = (*Neo4j)(nil)
