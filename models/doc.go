// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models defines the JSON request and response contracts of the room
// API. The room projection itself (participants, deck, statistics) is defined
// next to the code that computes it, in the store package.
package models
