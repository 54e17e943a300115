// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pointdeck API server.

Pointdeck is a real-time collaborative estimation tool (planning poker):
a facilitator creates a room, participants join and privately pick a card
from a shared deck, and the facilitator reveals everyone's vote together
with mean/median statistics. Clients observe changes by polling; there is
no push channel.

# Starting the Server

	go run . -p 8080

Or with environment variables (a .env file is honored):

	PORT=8080 ROOM_MAX_LIFETIME=6h go run .

# Configuration

Optional settings:

  - PORT (-p): server port (default: 8080)
  - ROOM_MAX_LIFETIME (--max-lifetime): hard cap on room age (default: 6h)
  - ROOM_IDLE_LIMIT (--idle-limit): empty-room expiry (default: 30m)
  - SWEEP_INTERVAL (--sweep-interval): sweeper cadence (default: 1m)

# Architecture

State lives in process memory only; restarting the server forgets all rooms.

  - store: the in-memory room registry, sweeper, and projections
  - session: request-scoped state transitions and authorization
  - handlers: HTTP request handlers (rooms, voting, state)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, JSON helpers, rate limiting
  - metrics: Prometheus collectors and the /metrics endpoint
  - models: request/response types
  - auth: ID and secret generation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
