// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package models

import (
	"time"
)

// Data source labels reported in response metadata. "mock" indicates the
// graph database was unreachable and the static fallback catalog served the
// request.
const (
	SourceLive = "live"
	SourceMock = "mock"
)

// MockDataNote is attached to responses served from the fallback catalog.
const MockDataNote = "Using mock data - graph database unavailable"

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [...],
//	  "metadata": {
//	    "timestamp": "2026-08-30T12:00:00Z",
//	    "query_time_ms": 12,
//	    "source": "live"
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Source is "live" when the graph database answered the query and "mock" when
// the fallback catalog did. Note carries degradation or strategy notes (e.g.
// the onboarding-based recommendation note for cold-start users).
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Source      string    `json:"source,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist
//   - QUERY_ERROR: Graph query execution failure with no fallback
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PageInfo contains page-based pagination metadata.
//
// HasMore is true iff page*limit < total, so that requesting page 2 with
// limit 20 slices exactly movies[20:40] of the full ordered result.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// NewPageInfo computes pagination metadata for a page/limit window over a
// total result count.
func NewPageInfo(page, limit int, total int64) PageInfo {
	if limit <= 0 {
		limit = 1
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    int64(page*limit) < total,
	}
}

// MovieListData is the payload for paginated movie listings.
type MovieListData struct {
	Movies     []Movie  `json:"movies"`
	Pagination PageInfo `json:"pagination"`
}

// RecommendationData is the payload for recommendation listings.
type RecommendationData struct {
	Recommendations      []Recommendation `json:"recommendations"`
	TotalRecommendations int              `json:"totalRecommendations"`
	UserID               string           `json:"userId,omitempty"`
	Strategy             string           `json:"strategy,omitempty"`
}
