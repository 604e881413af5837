// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package api

import (
	"net/http"
	"time"

	"github.com/rohansi4/moviegraph/internal/validation"
)

// chatBody is the POST /api/v1/chat payload.
type chatBody struct {
	UserID  string `json:"userId"`
	Message string `json:"message" validate:"required,max=500"`
}

// handleChat serves POST /api/v1/chat through the rule-based classifier.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var body chatBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid JSON body", nil)
		return
	}
	if details := validation.Struct(body); details != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid request", details)
		return
	}

	ctx, cancel := s.queryContext(r)
	defer cancel()

	res := s.chat.Respond(ctx, body.UserID, body.Message)
	respondData(w, http.StatusOK, res, res.Source, res.Note, started)
}
