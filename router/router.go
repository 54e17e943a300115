// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/pointdeck/pointdeck/handlers"
	"github.com/pointdeck/pointdeck/metrics"
	"github.com/pointdeck/pointdeck/middleware"
	"github.com/pointdeck/pointdeck/session"
)

func NewRouter(sess *session.Session, rl *middleware.RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(sess)
	votingHandler := handlers.NewVotingHandler(sess)
	stateHandler := handlers.NewStateHandler(sess)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(metrics.WithMetrics(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Room lifecycle. Creation and joining are rate limited; polling is not.
	mux.HandleFunc("POST /rooms", wrap(rl.Limit(roomHandler.Create)))
	mux.HandleFunc("GET /rooms/{id}/exists", wrap(roomHandler.Exists))
	mux.HandleFunc("GET /rooms/{id}/status", wrap(roomHandler.Status))
	mux.HandleFunc("DELETE /rooms/{id}", wrap(roomHandler.Delete))

	// Admin updates
	mux.HandleFunc("PUT /rooms/{id}/task", wrap(roomHandler.UpdateTask))
	mux.HandleFunc("PUT /rooms/{id}/deck", wrap(roomHandler.UpdateDeck))

	// Voting operations
	mux.HandleFunc("POST /rooms/{id}/join", wrap(rl.Limit(votingHandler.Join)))
	mux.HandleFunc("POST /rooms/{id}/leave", wrap(votingHandler.Leave))
	mux.HandleFunc("POST /rooms/{id}/vote", wrap(votingHandler.Vote))
	mux.HandleFunc("POST /rooms/{id}/reveal", wrap(votingHandler.Reveal))
	mux.HandleFunc("POST /rooms/{id}/reset", wrap(votingHandler.Reset))
	mux.HandleFunc("POST /rooms/{id}/revote", wrap(votingHandler.StartRevote))
	mux.HandleFunc("POST /rooms/{id}/heartbeat", wrap(votingHandler.Heartbeat))

	// Polled projection
	mux.HandleFunc("GET /rooms/{id}", wrap(stateHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pointdeck API v1"))
	})

	return mux
}
