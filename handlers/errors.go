// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/pointdeck/pointdeck/middleware"
	"github.com/pointdeck/pointdeck/session"
)

// writeError maps session errors onto HTTP statuses. Anything unrecognized
// is a 500, which should not happen: the session layer has no internal
// failure modes beyond its taxonomy.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrRoomNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Room not found")
	case errors.Is(err, session.ErrParticipantNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
	case errors.Is(err, session.ErrUsernameTaken):
		middleware.ErrorResponse(w, http.StatusConflict, "Username already taken in this room")
	case errors.Is(err, session.ErrNotAdmin):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin authority required")
	case errors.Is(err, session.ErrInvalidState):
		middleware.ErrorResponse(w, http.StatusConflict, "Operation not valid in the current room phase")
	case errors.Is(err, session.ErrEmptyDeck):
		middleware.ErrorResponse(w, http.StatusBadRequest, "deck cannot be empty")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
