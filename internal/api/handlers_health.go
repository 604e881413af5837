// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"net/http"
	"time"

	"github.com/rohansi4/moviegraph/internal/models"
)

// handleHealth reports process liveness and graph connectivity. The service
// is healthy even when the graph is down, because every read degrades to
// mock data; the database field tells operators which mode they are in.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	ctx, cancel := s.queryContext(r)
	defer cancel()

	database := "connected"
	source := models.SourceLive
	if err := s.exec.VerifyConnectivity(ctx); err != nil {
		database = "unavailable"
		source = models.SourceMock
	}

	respondData(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"database": database,
	}, source, "", started)
}
