// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"crypto/hmac"
	"strings"
	"sync"
	"time"

	"github.com/pointdeck/pointdeck/auth"
	"github.com/pointdeck/pointdeck/metrics"
)

// OnlineThreshold is how recently a participant must have been seen to be
// reported online in projections. Pure projection rule, nothing is stored.
const OnlineThreshold = 30 * time.Second

// Options tunes room expiry. Zero values fall back to the defaults.
type Options struct {
	// MaxLifetime is the hard cap on a room's age, counted from creation.
	MaxLifetime time.Duration
	// IdleLimit is how long a room may sit empty before it is swept.
	IdleLimit time.Duration
	// SweepInterval is how often the sweeper scans the registry.
	SweepInterval time.Duration
}

const (
	defaultMaxLifetime   = 6 * time.Hour
	defaultIdleLimit     = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// Store owns the in-memory room registry. All access to a room's mutable
// state goes through its methods; each method is atomic with respect to
// concurrent callers on the same room.
//
// Lock order is registry then room. Methods release the registry lock before
// taking a room lock, except deletion paths, which hold both so the tombstone
// and the registry removal are one atomic step.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*room

	opts Options
	now  func() time.Time
	stop chan struct{}
}

// New creates a store and starts its background sweeper. Call Close on
// shutdown to stop the sweeper.
func New(opts Options) *Store {
	s := newStore(opts)
	go s.sweepLoop()
	return s
}

// newStore builds the store without the sweeper goroutine so tests can drive
// sweeps by hand.
func newStore(opts Options) *Store {
	if opts.MaxLifetime <= 0 {
		opts.MaxLifetime = defaultMaxLifetime
	}
	if opts.IdleLimit <= 0 {
		opts.IdleLimit = defaultIdleLimit
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = defaultSweepInterval
	}
	return &Store{
		rooms: make(map[string]*room),
		opts:  opts,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
}

// Close stops the background sweeper. Safe to call more than once.
func (s *Store) Close() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

// CreateRoom allocates a fresh room with the default deck and registers it.
// It returns the new room's ID and its admin secret.
func (s *Store) CreateRoom() (roomID, adminSecret string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomID = auth.NewRoomID()
	for _, taken := s.rooms[roomID]; taken; _, taken = s.rooms[roomID] {
		roomID = auth.NewRoomID()
	}
	adminSecret = auth.NewAdminSecret()

	now := s.now()
	s.rooms[roomID] = &room{
		id:           roomID,
		adminSecret:  adminSecret,
		createdAt:    now,
		lastActivity: now,
		participants: make(map[string]*Participant),
		cardDeck:     append([]string(nil), DefaultDeck...),
	}
	metrics.RoomsCreated.Inc()
	metrics.ActiveRooms.Inc()
	return roomID, adminSecret
}

// Exists reports whether the room is registered.
func (s *Store) Exists(roomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[roomID]
	return ok
}

// Status reports presence and the tombstone flag. A missing room reads as
// deleted, which is all a polling client needs to stop retrying.
func (s *Store) Status(roomID string) (exists, deleted bool) {
	ok := s.withRoom(roomID, func(*room) {})
	return ok, !ok
}

// get fetches the room pointer without touching it.
func (s *Store) get(roomID string) *room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[roomID]
}

// withRoom runs fn with the room lock held and lastActivity refreshed.
// It returns false when the room is absent or tombstoned.
func (s *Store) withRoom(roomID string, fn func(*room)) bool {
	r := s.get(roomID)
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleted {
		return false
	}
	r.lastActivity = s.now()
	fn(r)
	return true
}

// AddParticipant inserts or overwrites the participant keyed by participantID.
// It returns nil when another participant already holds the username
// (case-insensitively) or when the room is missing. Re-joining with the same
// ID is not a collision; it replaces the entry with fresh state.
func (s *Store) AddParticipant(roomID, participantID, username string, isAdmin bool) *Participant {
	var added *Participant
	s.withRoom(roomID, func(r *room) {
		for id, p := range r.participants {
			if id != participantID && strings.EqualFold(p.Username, username) {
				return
			}
		}
		p := &Participant{
			ID:       participantID,
			Username: username,
			IsAdmin:  isAdmin,
			LastSeen: s.now(),
		}
		r.participants[participantID] = p
		cp := *p
		added = &cp
	})
	return added
}

// RemoveParticipant deletes the participant from the roster.
func (s *Store) RemoveParticipant(roomID, participantID string) bool {
	removed := false
	s.withRoom(roomID, func(r *room) {
		if _, ok := r.participants[participantID]; ok {
			delete(r.participants, participantID)
			removed = true
		}
	})
	return removed
}

// HasParticipant reports whether the participant is in the roster.
func (s *Store) HasParticipant(roomID, participantID string) bool {
	found := false
	s.withRoom(roomID, func(r *room) {
		_, found = r.participants[participantID]
	})
	return found
}

// IsAdmin reports the participant's stored admin flag.
func (s *Store) IsAdmin(roomID, participantID string) bool {
	admin := false
	s.withRoom(roomID, func(r *room) {
		if p, ok := r.participants[participantID]; ok {
			admin = p.IsAdmin
		}
	})
	return admin
}

// SetVote records the participant's vote; nil clears it. A non-nil vote ends
// an in-progress revote. Returns false when room or participant is missing.
func (s *Store) SetVote(roomID, participantID string, vote *string) bool {
	ok := false
	s.withRoom(roomID, func(r *room) {
		p, found := r.participants[participantID]
		if !found {
			return
		}
		if vote != nil {
			v := *vote
			p.Vote = &v
			if p.IsRevoting {
				p.IsRevoting = false
			}
			metrics.VotesCast.Inc()
		} else {
			p.Vote = nil
		}
		p.LastSeen = s.now()
		ok = true
	})
	return ok
}

// SetRevoting flips the participant's revoting flag. Entering a revote clears
// the stored vote so the old number can't leak back into a projection.
func (s *Store) SetRevoting(roomID, participantID string, revoting bool) bool {
	ok := false
	s.withRoom(roomID, func(r *room) {
		p, found := r.participants[participantID]
		if !found {
			return
		}
		p.IsRevoting = revoting
		if revoting {
			p.Vote = nil
		}
		p.LastSeen = s.now()
		ok = true
	})
	return ok
}

// Reveal makes votes visible in projections. Idempotent; calling it while
// already revealed is how a facilitator re-exposes votes cast after a revote.
func (s *Store) Reveal(roomID string) bool {
	return s.withRoom(roomID, func(r *room) {
		r.revealed = true
	})
}

// Revealed reports the room's reveal phase.
func (s *Store) Revealed(roomID string) (revealed, ok bool) {
	ok = s.withRoom(roomID, func(r *room) {
		revealed = r.revealed
	})
	return revealed, ok
}

// Reset returns the room to collecting: votes hidden, every vote and revoting
// flag cleared.
func (s *Store) Reset(roomID string) bool {
	return s.withRoom(roomID, func(r *room) {
		r.revealed = false
		for _, p := range r.participants {
			p.Vote = nil
			p.IsRevoting = false
		}
	})
}

// SetTaskDescription replaces the free-text task under estimation.
func (s *Store) SetTaskDescription(roomID, text string) bool {
	return s.withRoom(roomID, func(r *room) {
		r.taskDescription = text
	})
}

// SetCardDeck replaces the deck. Empty decks are rejected so a room can never
// end up unvotable.
func (s *Store) SetCardDeck(roomID string, deck []string) bool {
	if len(deck) == 0 {
		return false
	}
	return s.withRoom(roomID, func(r *room) {
		r.cardDeck = append([]string(nil), deck...)
	})
}

// UpdateParticipantActivity refreshes the participant's lastSeen. No-op when
// room or participant is missing.
func (s *Store) UpdateParticipantActivity(roomID, participantID string) {
	s.withRoom(roomID, func(r *room) {
		if p, ok := r.participants[participantID]; ok {
			p.LastSeen = s.now()
		}
	})
}

// VerifyAdminSecret compares the presented secret against the room's secret
// in constant time.
func (s *Store) VerifyAdminSecret(roomID, secret string) bool {
	r := s.get(roomID)
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleted {
		return false
	}
	return hmac.Equal([]byte(secret), []byte(r.adminSecret))
}

// DeleteRoom tombstones the room and removes it from the registry.
// Returns false when the room was already gone.
func (s *Store) DeleteRoom(roomID string) bool {
	if !s.remove(roomID) {
		return false
	}
	metrics.RoomsDeleted.Inc()
	metrics.ActiveRooms.Dec()
	return true
}

// remove performs the tombstone-then-delete sequence under both locks.
func (s *Store) remove(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	r.mu.Lock()
	r.deleted = true
	r.mu.Unlock()
	delete(s.rooms, roomID)
	return true
}

func (s *Store) sweepLoop() {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(s.now())
		}
	}
}

// sweep deletes rooms past their maximum lifetime and rooms that have sat
// empty beyond the idle limit. It uses the same tombstone ordering as
// DeleteRoom so foreground readers racing the sweep see all or nothing.
func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.rooms {
		r.mu.Lock()
		expired := now.Sub(r.createdAt) > s.opts.MaxLifetime ||
			(len(r.participants) == 0 && now.Sub(r.lastActivity) > s.opts.IdleLimit)
		if expired {
			r.deleted = true
		}
		r.mu.Unlock()
		if expired {
			delete(s.rooms, id)
			metrics.RoomsExpired.Inc()
			metrics.ActiveRooms.Dec()
		}
	}
}
