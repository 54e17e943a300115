// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"testing"
	"time"

	"github.com/pointdeck/pointdeck/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	st := store.New(store.Options{
		MaxLifetime:   time.Hour,
		IdleLimit:     time.Minute,
		SweepInterval: time.Minute,
	})
	t.Cleanup(st.Close)
	return New(st)
}

func card(label string) *string {
	return &label
}

func TestJoin(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()

	tests := []struct {
		name      string
		roomID    string
		username  string
		actor     Actor
		wantErr   error
		wantAdmin bool
	}{
		{
			name:     "plain join",
			roomID:   roomID,
			username: "alice",
		},
		{
			name:      "join with admin secret",
			roomID:    roomID,
			username:  "facilitator",
			actor:     Actor{AdminSecret: adminSecret},
			wantAdmin: true,
		},
		{
			name:     "wrong secret joins without admin",
			roomID:   roomID,
			username: "impostor",
			actor:    Actor{AdminSecret: "wrong"},
		},
		{
			name:     "username taken",
			roomID:   roomID,
			username: "alice",
			wantErr:  ErrUsernameTaken,
		},
		{
			name:     "username taken case-insensitively",
			roomID:   roomID,
			username: "ALICE",
			wantErr:  ErrUsernameTaken,
		},
		{
			name:     "room not found",
			roomID:   "missing",
			username: "alice",
			wantErr:  ErrRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participantID, isAdmin, err := s.Join(tt.roomID, tt.username, tt.actor)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Join() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if participantID == "" {
				t.Error("Join() returned empty participant ID")
			}
			if isAdmin != tt.wantAdmin {
				t.Errorf("Join() isAdmin = %v, want %v", isAdmin, tt.wantAdmin)
			}
		})
	}
}

func TestJoinIdempotentRejoin(t *testing.T) {
	s := newTestSession(t)
	roomID, _ := s.Create()

	first, _, err := s.Join(roomID, "alice", Actor{})
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	// Same ID, same username: not a collision.
	second, _, err := s.Join(roomID, "alice", Actor{ParticipantID: first})
	if err != nil {
		t.Fatalf("Re-join error = %v", err)
	}
	if second != first {
		t.Errorf("Re-join returned ID %q, want the held ID %q", second, first)
	}
}

func TestRevealAuthorization(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()
	adminID, _, _ := s.Join(roomID, "facilitator", Actor{AdminSecret: adminSecret})
	voterID, _, _ := s.Join(roomID, "alice", Actor{})

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"non-admin participant", Actor{ParticipantID: voterID}, ErrNotAdmin},
		{"no identity at all", Actor{}, ErrNotAdmin},
		{"wrong secret", Actor{AdminSecret: "nope"}, ErrNotAdmin},
		{"by stored admin flag", Actor{ParticipantID: adminID}, nil},
		{"by secret alone", Actor{AdminSecret: adminSecret}, nil},
		{"wrong secret but admin flag", Actor{ParticipantID: adminID, AdminSecret: "nope"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Reveal(roomID, tt.actor); !errors.Is(err, tt.wantErr) {
				t.Errorf("Reveal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := s.Reveal("missing", Actor{AdminSecret: adminSecret}); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Reveal() on missing room error = %v, want %v", err, ErrRoomNotFound)
	}
}

func TestStartRevote(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()
	voterID, _, _ := s.Join(roomID, "alice", Actor{})
	s.Vote(roomID, voterID, card("5"))

	// Not valid while collecting.
	if err := s.StartRevote(roomID, voterID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartRevote() before reveal error = %v, want %v", err, ErrInvalidState)
	}

	if err := s.Reveal(roomID, Actor{AdminSecret: adminSecret}); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}

	if err := s.StartRevote(roomID, "ghost"); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("StartRevote() unknown participant error = %v, want %v", err, ErrParticipantNotFound)
	}
	if err := s.StartRevote("missing", voterID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("StartRevote() unknown room error = %v, want %v", err, ErrRoomNotFound)
	}
	if err := s.StartRevote(roomID, voterID); err != nil {
		t.Fatalf("StartRevote() error = %v", err)
	}

	snap, err := s.State(roomID, "")
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if !snap.Participants[0].IsRevoting {
		t.Error("Participant should be revoting")
	}
	if snap.Participants[0].Vote != nil {
		t.Error("Old vote must be hidden during a revote")
	}
}

func TestDeleteRequiresSecret(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()
	s.Join(roomID, "facilitator", Actor{AdminSecret: adminSecret})

	if err := s.Delete(roomID, "wrong"); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("Delete() with wrong secret error = %v, want %v", err, ErrNotAdmin)
	}
	if !s.Exists(roomID) {
		t.Fatal("Failed delete must leave the room unchanged")
	}

	if err := s.Delete(roomID, adminSecret); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Exists(roomID) {
		t.Error("Room should be gone after deletion")
	}
	if err := s.Delete(roomID, adminSecret); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Second Delete() error = %v, want %v", err, ErrRoomNotFound)
	}
}

func TestUpdateDeck(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()
	voterID, _, _ := s.Join(roomID, "alice", Actor{})

	admin := Actor{AdminSecret: adminSecret}

	if err := s.UpdateDeck(roomID, []string{"S", "M", "L"}, Actor{ParticipantID: voterID}); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("UpdateDeck() by non-admin error = %v, want %v", err, ErrNotAdmin)
	}
	if err := s.UpdateDeck(roomID, nil, admin); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("UpdateDeck() with empty deck error = %v, want %v", err, ErrEmptyDeck)
	}
	if err := s.UpdateDeck(roomID, []string{"S", "M", "L"}, admin); err != nil {
		t.Fatalf("UpdateDeck() error = %v", err)
	}

	snap, _ := s.State(roomID, "")
	if len(snap.CardDeck) != 3 {
		t.Errorf("Deck has %d cards, want 3", len(snap.CardDeck))
	}
}

func TestUpdateTask(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()

	if err := s.UpdateTask(roomID, "Estimate the login flow", Actor{AdminSecret: adminSecret}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	snap, _ := s.State(roomID, "")
	if snap.TaskDescription != "Estimate the login flow" {
		t.Errorf("TaskDescription = %q", snap.TaskDescription)
	}
}

func TestResetClearsRound(t *testing.T) {
	s := newTestSession(t)
	roomID, adminSecret := s.Create()
	admin := Actor{AdminSecret: adminSecret}
	voterID, _, _ := s.Join(roomID, "alice", Actor{})

	s.Vote(roomID, voterID, card("8"))
	s.Reveal(roomID, admin)
	s.StartRevote(roomID, voterID)

	if err := s.Reset(roomID, admin); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	snap, _ := s.State(roomID, "")
	if snap.Revealed {
		t.Error("Reset should return the room to collecting")
	}
	p := snap.Participants[0]
	if p.HasVoted || p.IsRevoting {
		t.Errorf("Reset should clear votes and revoting, got %+v", p)
	}
}

func TestStateTouchesActor(t *testing.T) {
	s := newTestSession(t)
	roomID, _ := s.Create()
	voterID, _, _ := s.Join(roomID, "alice", Actor{})

	if _, err := s.State(roomID, voterID); err != nil {
		t.Fatalf("State() error = %v", err)
	}
	if _, err := s.State("missing", ""); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("State() on missing room error = %v, want %v", err, ErrRoomNotFound)
	}

	snap, _ := s.State(roomID, "")
	if !snap.Participants[0].IsOnline {
		t.Error("A participant who just polled should be online")
	}
}

func TestLeaveAndVote(t *testing.T) {
	s := newTestSession(t)
	roomID, _ := s.Create()
	voterID, _, _ := s.Join(roomID, "alice", Actor{})

	if !s.Vote(roomID, voterID, card("3")) {
		t.Error("Vote() should succeed for a joined participant")
	}
	if s.Vote(roomID, "ghost", card("3")) {
		t.Error("Vote() should fail for an unknown participant")
	}

	s.Leave(roomID, voterID)
	snap, _ := s.State(roomID, "")
	if len(snap.Participants) != 0 {
		t.Error("Roster should be empty after leave")
	}

	// Leaving again, or leaving a missing room, is not an error.
	s.Leave(roomID, voterID)
	s.Leave("missing", voterID)
}
