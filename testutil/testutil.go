// Copyright (c) 2026 The Pointdeck Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pointdeck/pointdeck/session"
	"github.com/pointdeck/pointdeck/store"
)

// NewTestStore creates a store with short expiry settings and cleans up its
// sweeper when the test ends.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(store.Options{
		MaxLifetime:   time.Hour,
		IdleLimit:     time.Minute,
		SweepInterval: time.Minute,
	})
	t.Cleanup(st.Close)
	return st
}

// NewTestSession creates a session over a fresh test store.
func NewTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(NewTestStore(t))
}

// CreateTestRoom creates a room and returns its ID and admin secret.
func CreateTestRoom(t *testing.T, sess *session.Session) (roomID, adminSecret string) {
	t.Helper()
	return sess.Create()
}

// JoinTestParticipant joins the room under the given username and returns
// the participant ID. Fails the test on any join error.
func JoinTestParticipant(t *testing.T, sess *session.Session, roomID, username string) string {
	t.Helper()

	participantID, _, err := sess.Join(roomID, username, session.Actor{})
	if err != nil {
		t.Fatalf("Failed to join test participant %q: %v", username, err)
	}
	return participantID
}

// JoinTestAdmin joins the room with the admin secret and returns the
// participant ID. Fails the test if admin privilege was not granted.
func JoinTestAdmin(t *testing.T, sess *session.Session, roomID, adminSecret, username string) string {
	t.Helper()

	participantID, isAdmin, err := sess.Join(roomID, username, session.Actor{AdminSecret: adminSecret})
	if err != nil {
		t.Fatalf("Failed to join test admin %q: %v", username, err)
	}
	if !isAdmin {
		t.Fatalf("Expected %q to be granted admin", username)
	}
	return participantID
}

// Card returns a pointer to the card label, for vote submissions.
func Card(label string) *string {
	return &label
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
