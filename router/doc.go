// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the HTTP routes to their handlers using Go 1.22+
// method-pattern routing on the standard ServeMux. Every route goes through
// request logging and metrics; creation and joining additionally go through
// the rate limiter.
package router
