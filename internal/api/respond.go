// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package api is the HTTP surface: chi router, middleware, and thin handlers
// that parse parameters, call a service, and shape the uniform response
// envelope. Handlers hold no business logic; fallback decisions live in the
// services.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/rohansi4/moviegraph/internal/logging"
	"github.com/rohansi4/moviegraph/internal/models"
)

// Error codes used in the response envelope.
const (
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeQuery      = "QUERY_ERROR"
)

// respondData writes a success envelope. source and note come from the
// service result; started stamps query_time_ms.
func respondData(w http.ResponseWriter, status int, data any, source, note string, started time.Time) {
	writeJSON(w, status, models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(started).Milliseconds(),
			Source:      source,
			Note:        note,
		},
	})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	writeJSON(w, status, models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
