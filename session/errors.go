// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "errors"

// Operation errors. The transport layer maps these to HTTP statuses; none is
// ever fatal, and an operation racing a room deletion degrades to
// ErrRoomNotFound.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUsernameTaken       = errors.New("username already taken in this room")
	ErrNotAdmin            = errors.New("admin authority required")
	ErrInvalidState        = errors.New("operation not valid in the current room phase")
	ErrEmptyDeck           = errors.New("card deck cannot be empty")
)
