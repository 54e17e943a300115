// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"
	"time"
)

// DefaultDeck is the card deck every new room starts with. "?" and the coffee
// card are valid votes but never count toward statistics.
var DefaultDeck = []string{"?", "0", "1", "2", "3", "5", "8", "13", "20", "40", "100", "☕"}

// Participant is a member of exactly one room. Vote is nil until the
// participant votes; IsRevoting is only ever true between opting back into
// voting after a reveal and casting the new vote.
type Participant struct {
	ID         string
	Username   string
	Vote       *string
	IsAdmin    bool
	LastSeen   time.Time
	IsRevoting bool
}

// room is the aggregate root. All fields are guarded by mu; nothing outside
// this package ever sees a *room, only copies and projections.
type room struct {
	mu sync.Mutex

	id          string
	adminSecret string
	createdAt   time.Time

	lastActivity    time.Time
	participants    map[string]*Participant
	cardDeck        []string
	revealed        bool
	taskDescription string

	// deleted is set under mu before the room leaves the registry, so a
	// reader holding a stale pointer observes absence instead of a
	// half-deleted room.
	deleted bool
}
