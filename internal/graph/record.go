// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package graph

import (
	"strconv"
	"time"
)

// Record is one row of a query result, keyed by the RETURN aliases.
//
// The Neo4j driver returns integers as int64 and may return floats for
// aggregate expressions; the accessors below coerce between numeric kinds so
// callers never care which the database chose.
type Record map[string]any

// String returns the value for key as a string, or "" when absent or not a
// string.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

// Int returns the value for key as an int64, coercing from float64 and
// string forms. Returns 0 when absent or not numeric.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float returns the value for key as a float64, coercing from integer forms.
// Returns 0 when absent or not numeric.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Bool returns the value for key as a bool, or false when absent.
func (r Record) Bool(key string) bool {
	v, _ := r[key].(bool)
	return v
}

// Strings returns the value for key as a string slice. Neo4j list values
// arrive as []any; non-string elements are skipped.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Time returns the value for key as a time.Time. Neo4j temporal values are
// surfaced by the driver as time.Time; RFC3339 strings are also accepted.
// Returns the zero time when absent or unparseable.
func (r Record) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}
