// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"github.com/pointdeck/pointdeck/auth"
	"github.com/pointdeck/pointdeck/store"
)

// Store is the room-store contract the session operations run against. The
// in-memory implementation lives in the store package; a networked backend
// only has to satisfy this interface.
type Store interface {
	CreateRoom() (roomID, adminSecret string)
	Exists(roomID string) bool
	Status(roomID string) (exists, deleted bool)
	AddParticipant(roomID, participantID, username string, isAdmin bool) *store.Participant
	RemoveParticipant(roomID, participantID string) bool
	HasParticipant(roomID, participantID string) bool
	IsAdmin(roomID, participantID string) bool
	SetVote(roomID, participantID string, vote *string) bool
	SetRevoting(roomID, participantID string, revoting bool) bool
	Reveal(roomID string) bool
	Revealed(roomID string) (revealed, ok bool)
	Reset(roomID string) bool
	SetTaskDescription(roomID, text string) bool
	SetCardDeck(roomID string, deck []string) bool
	UpdateParticipantActivity(roomID, participantID string)
	VerifyAdminSecret(roomID, secret string) bool
	DeleteRoom(roomID string) bool
	Snapshot(roomID string) (*store.Snapshot, bool)
}

// Actor identifies who is performing an operation: the participant ID the
// client holds, the admin secret, or both.
type Actor struct {
	ParticipantID string
	AdminSecret   string
}

// Session exposes the request-scoped operations the transport calls. Each
// operation validates authority, applies one state transition and returns a
// result; clients observe everything else by re-polling State.
type Session struct {
	store Store
}

func New(st Store) *Session {
	return &Session{store: st}
}

// Create allocates a new room and returns its ID and admin secret.
func (s *Session) Create() (roomID, adminSecret string) {
	return s.store.CreateRoom()
}

// Exists reports whether the room is registered.
func (s *Session) Exists(roomID string) bool {
	return s.store.Exists(roomID)
}

// Status reports presence and deletion for clients that keep polling a room
// that may have gone away under them.
func (s *Session) Status(roomID string) (exists, deleted bool) {
	return s.store.Status(roomID)
}

// Join adds the actor to the room under the given username. Admin privilege
// is granted if and only if the presented secret verifies. When the actor
// supplies no participant ID a fresh one is minted; re-joining with a held ID
// and the same username is idempotent.
func (s *Session) Join(roomID, username string, actor Actor) (participantID string, isAdmin bool, err error) {
	if !s.store.Exists(roomID) {
		return "", false, ErrRoomNotFound
	}

	participantID = actor.ParticipantID
	if participantID == "" {
		participantID = auth.NewParticipantID()
	}
	isAdmin = actor.AdminSecret != "" && s.store.VerifyAdminSecret(roomID, actor.AdminSecret)

	if s.store.AddParticipant(roomID, participantID, username, isAdmin) == nil {
		// The store only rejects a known room on a username collision; if
		// the room vanished between the checks, report that instead.
		if !s.store.Exists(roomID) {
			return "", false, ErrRoomNotFound
		}
		return "", false, ErrUsernameTaken
	}
	return participantID, isAdmin, nil
}

// Leave removes the participant. Leaving a room that is already gone is fine.
func (s *Session) Leave(roomID, participantID string) {
	s.store.RemoveParticipant(roomID, participantID)
}

// Vote stores the participant's card; nil clears it. Unselect semantics
// (tapping the same card twice) live in the client, which simply passes nil.
// Any known participant may vote, for themself only.
func (s *Session) Vote(roomID, participantID string, vote *string) bool {
	return s.store.SetVote(roomID, participantID, vote)
}

// Reveal transitions the room to revealed. Admin only. Revealing an already
// revealed room is how the facilitator re-exposes votes cast after a revote.
func (s *Session) Reveal(roomID string, actor Actor) error {
	if err := s.authorize(roomID, actor); err != nil {
		return err
	}
	if !s.store.Reveal(roomID) {
		return ErrRoomNotFound
	}
	return nil
}

// Reset returns the room to collecting and clears all votes and revoting
// flags. Admin only.
func (s *Session) Reset(roomID string, actor Actor) error {
	if err := s.authorize(roomID, actor); err != nil {
		return err
	}
	if !s.store.Reset(roomID) {
		return ErrRoomNotFound
	}
	return nil
}

// StartRevote lets a participant opt back into voting after a reveal without
// resetting the whole room. Only valid while the room is revealed.
func (s *Session) StartRevote(roomID, participantID string) error {
	revealed, ok := s.store.Revealed(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	if !s.store.HasParticipant(roomID, participantID) {
		return ErrParticipantNotFound
	}
	if !revealed {
		return ErrInvalidState
	}
	if !s.store.SetRevoting(roomID, participantID, true) {
		return ErrParticipantNotFound
	}
	return nil
}

// UpdateTask replaces the task description. Admin only.
func (s *Session) UpdateTask(roomID, text string, actor Actor) error {
	if err := s.authorize(roomID, actor); err != nil {
		return err
	}
	if !s.store.SetTaskDescription(roomID, text) {
		return ErrRoomNotFound
	}
	return nil
}

// UpdateDeck replaces the card deck. Admin only; empty decks are rejected
// here and again at the store boundary.
func (s *Session) UpdateDeck(roomID string, deck []string, actor Actor) error {
	if err := s.authorize(roomID, actor); err != nil {
		return err
	}
	if len(deck) == 0 {
		return ErrEmptyDeck
	}
	if !s.store.SetCardDeck(roomID, deck) {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes the room. Deletion demands the admin secret itself; the
// stored admin flag is deliberately not enough for this stronger action.
func (s *Session) Delete(roomID, adminSecret string) error {
	if !s.store.Exists(roomID) {
		return ErrRoomNotFound
	}
	if !s.store.VerifyAdminSecret(roomID, adminSecret) {
		return ErrNotAdmin
	}
	if !s.store.DeleteRoom(roomID) {
		return ErrRoomNotFound
	}
	return nil
}

// Heartbeat refreshes the participant's liveness and nothing else.
func (s *Session) Heartbeat(roomID, participantID string) {
	s.store.UpdateParticipantActivity(roomID, participantID)
}

// State returns the room projection. When the caller identifies itself the
// read doubles as a heartbeat, which is what keeps pollers online.
func (s *Session) State(roomID, participantID string) (*store.Snapshot, error) {
	if participantID != "" {
		s.store.UpdateParticipantActivity(roomID, participantID)
	}
	snap, ok := s.store.Snapshot(roomID)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return snap, nil
}

// authorize implements the dual admin-authorization policy: a verifying
// secret or the actor's stored admin flag both suffice. The secret survives
// client storage resets; the flag survives losing the secret mid-session.
func (s *Session) authorize(roomID string, actor Actor) error {
	if !s.store.Exists(roomID) {
		return ErrRoomNotFound
	}
	if actor.AdminSecret != "" && s.store.VerifyAdminSecret(roomID, actor.AdminSecret) {
		return nil
	}
	if actor.ParticipantID != "" && s.store.IsAdmin(roomID, actor.ParticipantID) {
		return nil
	}
	return ErrNotAdmin
}
