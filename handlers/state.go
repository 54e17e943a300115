// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/pointdeck/pointdeck/middleware"
	"github.com/pointdeck/pointdeck/session"
)

type StateHandler struct {
	sess *session.Session
}

func NewStateHandler(sess *session.Session) *StateHandler {
	return &StateHandler{sess: sess}
}

// Get handles GET /rooms/{id}. Clients poll this on a fixed cadence; passing
// participant_id makes the poll count as a heartbeat.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	participantID := r.URL.Query().Get("participant_id")

	snap, err := h.sess.State(roomID, participantID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}
