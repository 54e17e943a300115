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

type RoomHandler struct {
	sess *session.Session
}

func NewRoomHandler(sess *session.Session) *RoomHandler {
	return &RoomHandler{sess: sess}
}

// Create handles POST /rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	roomID, adminSecret := h.sess.Create()

	slog.Info("room created", "room_id", roomID)

	// The admin secret is returned exactly once, here. It never appears in
	// snapshots.
	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		RoomID:      roomID,
		AdminSecret: adminSecret,
	})
}

// Exists handles GET /rooms/{id}/exists
func (h *RoomHandler) Exists(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExistsResponse{
		Exists: h.sess.Exists(roomID),
	})
}

// Status handles GET /rooms/{id}/status
func (h *RoomHandler) Status(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	exists, deleted := h.sess.Status(roomID)
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Exists:  exists,
		Deleted: deleted,
	})
}

// Delete handles DELETE /rooms/{id}. Unlike the other admin operations,
// deletion accepts only the admin secret, not a participant's admin flag.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	adminSecret := r.Header.Get("X-Admin-Secret")
	if adminSecret == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Secret header required")
		return
	}

	if err := h.sess.Delete(roomID, adminSecret); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("room deleted", "room_id", roomID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteRoomResponse{
		Success: true,
		Deleted: true,
	})
}

// UpdateTask handles PUT /rooms/{id}/task
func (h *RoomHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	var req models.UpdateTaskRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := session.Actor{
		ParticipantID: req.ParticipantID,
		AdminSecret:   r.Header.Get("X-Admin-Secret"),
	}
	if err := h.sess.UpdateTask(roomID, req.Description, actor); err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// UpdateDeck handles PUT /rooms/{id}/deck
func (h *RoomHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	if roomID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "room id is required")
		return
	}

	var req models.UpdateDeckRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actor := session.Actor{
		ParticipantID: req.ParticipantID,
		AdminSecret:   r.Header.Get("X-Admin-Secret"),
	}
	if err := h.sess.UpdateDeck(roomID, req.Deck, actor); err != nil {
		writeError(w, err)
		return
	}

	slog.Info("deck updated", "room_id", roomID, "cards", len(req.Deck))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
