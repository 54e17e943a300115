// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Pointdeck API.

# Handler Types

Each handler is a struct holding the session-operations dependency:

  - RoomHandler: room lifecycle (create, status, delete) and admin updates
  - VotingHandler: join/leave, voting, reveal/reset, revote, heartbeat
  - StateHandler: the polled room projection

Handlers are created via constructors that accept the session layer:

	roomHandler := handlers.NewRoomHandler(sess)

# Room Lifecycle

	POST   /rooms              → Create (returns room_id + admin_secret)
	GET    /rooms/{id}/exists  → Exists
	GET    /rooms/{id}/status  → Status
	DELETE /rooms/{id}         → Delete (X-Admin-Secret header required)

# Voting Flow

	POST /rooms/{id}/join      → Join (returns participant_id, is_admin)
	POST /rooms/{id}/vote      → Vote (null clears the selection)
	POST /rooms/{id}/reveal    → Reveal (admin)
	POST /rooms/{id}/revote    → StartRevote (revealed rooms only)
	POST /rooms/{id}/reset     → Reset (admin)
	GET  /rooms/{id}           → Get (projection + statistics)

Admin operations accept the X-Admin-Secret header or an acting participant
whose stored admin flag is set; deletion accepts the header only.

# Error Mapping

Session errors map to statuses in errors.go: not-found → 404, username
collision and wrong-phase → 409, missing authority → 401, empty deck → 400.
*/
package handlers
