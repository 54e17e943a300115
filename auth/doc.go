// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates the identifiers and secrets the room store hands out.

# Room IDs

Room IDs are the first 8 characters of a UUIDv4:

	roomID := auth.NewRoomID()

Short enough to read out loud in a meeting, random enough that the store's
collision retry loop practically never runs.

# Admin Secrets

Each room gets exactly one admin secret at creation:

	secret := auth.NewAdminSecret()

The secret is a full UUIDv4 stored on the room and compared in constant time
by the store. Possession of the secret is the only proof of facilitator
authority that survives a client losing its local state.

# Participant IDs

Participant IDs are UUIDv4 values minted when a client joins without
presenting one:

	id := auth.NewParticipantID()

Clients persist the ID and present it on re-join, which makes it a
capability rather than an authenticated identity.
*/
package auth
