// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the authoritative in-memory registry of estimation rooms.

# Model

A room holds its participants, the card deck, the task under estimation, the
reveal flag, and the admin secret. Participants hold their vote, their admin
flag, their revoting flag, and a lastSeen timestamp. Nothing is persisted;
the registry is volatile process memory by contract, and a networked backend
would slot in behind the same operations without touching the layers above.

# Concurrency

The registry map is guarded by a store-level RWMutex and every room by its own
mutex, so concurrent operations on different rooms don't serialize against
each other. Deletion (explicit or by the sweeper) sets a tombstone flag under
the room lock before removing the registry entry; a reader that raced the
delete and still holds the room pointer observes the tombstone and reports
the room as missing rather than acting on a half-deleted aggregate.

# Expiry

A background sweeper started by New scans the registry on a fixed interval
and removes rooms older than the maximum lifetime, plus rooms that have sat
empty past the idle limit. Participants are never expired individually: a
stale participant stays in the roster and merely shows as offline in
projections.

# Projections

Snapshot computes the externally visible view: per-participant state with
votes hidden until reveal (and hidden again for anyone mid-revote), online
status derived from lastSeen, and mean/median/count statistics over the
numeric votes of a revealed room.
*/
package store
