// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"github.com/google/uuid"
)

// RoomIDLength is the length of the short room identifier handed out in URLs.
const RoomIDLength = 8

// NewRoomID creates a short, shareable room identifier.
// Uniqueness against live rooms is the store's job; the store retries on the
// rare collision.
func NewRoomID() string {
	return uuid.NewString()[:RoomIDLength]
}

// NewAdminSecret creates the opaque token proving room-creator authority.
// It is generated once per room and never derivable from the room ID.
func NewAdminSecret() string {
	return uuid.NewString()
}

// NewParticipantID creates a participant identifier. Callers persist it
// themselves and present it on re-join, so it doubles as a capability.
func NewParticipantID() string {
	return uuid.NewString()
}
