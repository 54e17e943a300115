// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the request-scoped operations of the estimation
API: join, vote, reveal, reset, revote, task/deck updates, heartbeat, delete.

Each operation is a short transaction against an injected Store: load, check
authority, apply one transition, return. The room's vote cycle is

	collecting -> revealed -> collecting (reset)

with a per-participant revoting sub-state while revealed. Admin-gated
operations accept either the room's admin secret or the acting participant's
stored admin flag; room deletion alone insists on the secret.

Participant identity is a caller-held capability, not an authenticated
identity: whoever presents a participant ID acts as that participant. That is
a deliberate simplification for a tool shared inside a team.
*/
package session
