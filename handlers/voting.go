// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pointdeck/pointdeck/middleware"
	"github.com/pointdeck/pointdeck/models"
	"github.com/pointdeck/pointdeck/session"
)

type VotingHandler struct {
	sess *session.Session
}

func NewVotingHandler(sess *session.Session) *VotingHandler {
	return &VotingHandler{sess: sess}
}

// Join handles POST /rooms/{id}/join
func (h *VotingHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	var req models.JoinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if len(req.Username) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username must be at most 50 characters")
		return
	}

	actor := session.Actor{
		ParticipantID: req.ParticipantID,
		AdminSecret:   req.AdminSecret,
	}
	participantID, isAdmin, err := h.sess.Join(roomID, req.Username, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("participant joined", "room_id", roomID, "username", req.Username, "is_admin", isAdmin)

	middleware.JSONResponse(w, http.StatusCreated, models.JoinResponse{
		ParticipantID: participantID,
		IsAdmin:       isAdmin,
	})
}

// Leave handles POST /rooms/{id}/leave
func (h *VotingHandler) Leave(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.LeaveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Leaving never fails; a vanished room means there is nothing to leave.
	h.sess.Leave(roomID, req.ParticipantID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Vote handles POST /rooms/{id}/vote. A null vote clears the selection.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	success := h.sess.Vote(roomID, req.ParticipantID, req.Vote)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: success})
}

// Reveal handles POST /rooms/{id}/reveal
func (h *VotingHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	actor, ok := h.parseActor(w, r)
	if !ok {
		return
	}

	if err := h.sess.Reveal(roomID, actor); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("votes revealed", "room_id", roomID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Reset handles POST /rooms/{id}/reset
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	actor, ok := h.parseActor(w, r)
	if !ok {
		return
	}

	if err := h.sess.Reset(roomID, actor); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("votes reset", "room_id", roomID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// StartRevote handles POST /rooms/{id}/revote
func (h *VotingHandler) StartRevote(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.RevoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	if err := h.sess.StartRevote(roomID, req.ParticipantID); err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Heartbeat handles POST /rooms/{id}/heartbeat
func (h *VotingHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.HeartbeatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.sess.Heartbeat(roomID, req.ParticipantID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// parseActor reads the acting participant from the body and the admin secret
// from the X-Admin-Secret header. Either may be empty; the session layer
// decides whether the combination carries admin authority.
func (h *VotingHandler) parseActor(w http.ResponseWriter, r *http.Request) (session.Actor, bool) {
	var req models.ActorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return session.Actor{}, false
	}
	return session.Actor{
		ParticipantID: req.ParticipantID,
		AdminSecret:   r.Header.Get("X-Admin-Secret"),
	}, true
}
