// Package session tracks authenticated browser sessions. A session records
// who logged in, when, and with what authentication context; the endpoint
// handlers consult it when deciding whether an authorization request can be
// completed without interaction.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no session exists under the requested ID.
var ErrNotFound = errors.New("session not found")

// Session is the authenticated-user state bound to a browser.
type Session struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	AuthenticatedAt time.Time `json:"authenticatedAt"`
	ACR             string    `json:"acr,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions.
type Store interface {
	// Save stores a session until its expiry.
	Save(ctx context.Context, session *Session) error

	// Find returns the session with the given ID, or ErrNotFound when the
	// session does not exist or has expired.
	Find(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}
