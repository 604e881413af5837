// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package graph

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordNumericCoercion(t *testing.T) {
	rec := Record{
		"asInt64":   int64(42),
		"asFloat":   4.2,
		"asInt":     7,
		"intString": "99",
		"junk":      struct{}{},
	}

	// The driver returns int64 for count() and float64 for avg();
	// both sides must coerce.
	assert.Equal(t, int64(42), rec.Int("asInt64"))
	assert.Equal(t, int64(4), rec.Int("asFloat"))
	assert.Equal(t, int64(7), rec.Int("asInt"))
	assert.Equal(t, int64(99), rec.Int("intString"))
	assert.Equal(t, int64(0), rec.Int("junk"))
	assert.Equal(t, int64(0), rec.Int("missing"))

	assert.InDelta(t, 42.0, rec.Float("asInt64"), 1e-9)
	assert.InDelta(t, 4.2, rec.Float("asFloat"), 1e-9)
	assert.InDelta(t, 0.0, rec.Float("missing"), 1e-9)
}

func TestRecordStrings(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want []string
	}{
		{
			name: "driver list of any",
			rec:  Record{"genres": []any{"Action", "Sci-Fi"}},
			want: []string{"Action", "Sci-Fi"},
		},
		{
			name: "native string slice",
			rec:  Record{"genres": []string{"Comedy"}},
			want: []string{"Comedy"},
		},
		{
			name: "mixed list skips non-strings",
			rec:  Record{"genres": []any{"Drama", int64(3), "War"}},
			want: []string{"Drama", "War"},
		},
		{
			name: "missing key",
			rec:  Record{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Strings("genres"))
		})
	}
}

func TestRecordTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	rec := Record{
		"native": now,
		"rfc":    "2026-08-30T12:00:00Z",
		"bad":    "yesterday-ish",
	}

	assert.Equal(t, now, rec.Time("native"))
	assert.Equal(t, now, rec.Time("rfc"))
	assert.True(t, rec.Time("bad").IsZero())
	assert.True(t, rec.Time("missing").IsZero())
}

func TestFlattenRecordExpandsNodes(t *testing.T) {
	node := dbtype.Node{
		Labels: []string{"Movie"},
		Props: map[string]any{
			"movieId": int64(1),
			"title":   "The Dark Knight (2008)",
			"genres":  []any{"Action", "Crime"},
		},
	}
	rel := dbtype.Relationship{
		Type:  "RATED",
		Props: map[string]any{"rating": 4.5},
	}

	row := flattenRecord(
		[]string{"m", "r", "score"},
		[]any{node, rel, 0.87},
	)

	require.Equal(t, int64(1), row.Int("m.movieId"))
	require.Equal(t, "The Dark Knight (2008)", row.String("m.title"))
	require.Equal(t, []string{"Action", "Crime"}, row.Strings("m.genres"))
	require.Equal(t, "RATED", row.String("r.type"))
	require.InDelta(t, 4.5, row.Float("r.rating"), 1e-9)
	require.InDelta(t, 0.87, row.Float("score"), 1e-9)
}
