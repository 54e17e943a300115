// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves server configuration from CLI flags, environment
variables, and an optional .env file, in that order of precedence.

Settings:

  - PORT (-p): server port (default: 8080)
  - ROOM_MAX_LIFETIME (--max-lifetime): hard cap on room age (default: 6h)
  - ROOM_IDLE_LIMIT (--idle-limit): how long an empty room survives (default: 30m)
  - SWEEP_INTERVAL (--sweep-interval): sweeper cadence (default: 1m)

Durations use Go syntax ("30m", "6h").
*/
package cliparse
