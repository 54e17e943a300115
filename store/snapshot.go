// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sort"
)

// ParticipantView is the externally visible participant state. Vote is nil
// unless the room is revealed and the participant is not mid-revote; clients
// learn that someone voted from HasVoted without learning the card.
type ParticipantView struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	HasVoted   bool    `json:"has_voted"`
	Vote       *string `json:"vote"`
	IsAdmin    bool    `json:"is_admin"`
	IsOnline   bool    `json:"is_online"`
	IsRevoting bool    `json:"is_revoting"`
}

// VoteStats aggregates the numeric votes visible in a revealed room.
type VoteStats struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Total   int     `json:"total"`
}

// Snapshot is the projection returned to polling clients. The admin secret
// never appears here.
type Snapshot struct {
	ID              string            `json:"id"`
	Participants    []ParticipantView `json:"participants"`
	CardDeck        []string          `json:"card_deck"`
	Revealed        bool              `json:"revealed"`
	TaskDescription string            `json:"task_description"`
	Stats           *VoteStats        `json:"stats,omitempty"`
}

// Snapshot computes the room's externally visible view, including derived
// statistics when the room is revealed. Online status is recomputed from
// lastSeen on every call.
func (s *Store) Snapshot(roomID string) (*Snapshot, bool) {
	var snap *Snapshot
	ok := s.withRoom(roomID, func(r *room) {
		now := s.now()
		views := make([]ParticipantView, 0, len(r.participants))
		for _, p := range r.participants {
			var vote *string
			if r.revealed && !p.IsRevoting && p.Vote != nil {
				v := *p.Vote
				vote = &v
			}
			views = append(views, ParticipantView{
				ID:         p.ID,
				Username:   p.Username,
				HasVoted:   p.Vote != nil,
				Vote:       vote,
				IsAdmin:    p.IsAdmin,
				IsOnline:   now.Sub(p.LastSeen) < OnlineThreshold,
				IsRevoting: p.IsRevoting,
			})
		}
		// Map iteration order is random; keep the roster stable for clients.
		sort.Slice(views, func(i, j int) bool {
			return views[i].Username < views[j].Username
		})

		var stats *VoteStats
		if r.revealed {
			stats = computeStats(views)
		}
		snap = &Snapshot{
			ID:              r.id,
			Participants:    views,
			CardDeck:        append([]string(nil), r.cardDeck...),
			Revealed:        r.revealed,
			TaskDescription: r.taskDescription,
			Stats:           stats,
		}
	})
	return snap, ok
}
