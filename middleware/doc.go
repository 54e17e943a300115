// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the HTTP plumbing shared by all handlers:
request logging, JSON encoding helpers, the error-response shape, CORS,
client IP extraction, and per-client token-bucket rate limiting.

Handlers are wrapped per route:

	mux.HandleFunc("POST /rooms", middleware.WithLogging(rl.Limit(h.Create)))
*/
package middleware
