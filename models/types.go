// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type JoinRequest struct {
	Username string `json:"username"`
	// ParticipantID is supplied on re-join so the caller keeps its identity;
	// left empty, the server mints one.
	ParticipantID string `json:"participant_id,omitempty"`
	AdminSecret   string `json:"admin_secret,omitempty"`
}

type LeaveRequest struct {
	ParticipantID string `json:"participant_id"`
}

// Vote is nil to clear a previously cast vote.
type VoteRequest struct {
	ParticipantID string  `json:"participant_id"`
	Vote          *string `json:"vote"`
}

// ActorRequest carries the acting participant for admin-gated operations;
// the admin secret travels in the X-Admin-Secret header.
type ActorRequest struct {
	ParticipantID string `json:"participant_id,omitempty"`
}

type UpdateTaskRequest struct {
	ParticipantID string `json:"participant_id,omitempty"`
	Description   string `json:"description"`
}

type UpdateDeckRequest struct {
	ParticipantID string   `json:"participant_id,omitempty"`
	Deck          []string `json:"deck"`
}

type RevoteRequest struct {
	ParticipantID string `json:"participant_id"`
}

type HeartbeatRequest struct {
	ParticipantID string `json:"participant_id"`
}

// Response types

type CreateRoomResponse struct {
	RoomID      string `json:"room_id"`
	AdminSecret string `json:"admin_secret"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type StatusResponse struct {
	Exists  bool `json:"exists"`
	Deleted bool `json:"deleted"`
}

type JoinResponse struct {
	ParticipantID string `json:"participant_id"`
	IsAdmin       bool   `json:"is_admin"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type DeleteRoomResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
