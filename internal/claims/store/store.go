// Package store persists user claim values. Claims are keyed by subject,
// claim name, and an optional BCP 47 language tag; the empty tag addresses
// the untagged value.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates no value is stored for the requested claim.
var ErrNotFound = errors.New("claim not found")

// Store reads and writes user claim values.
type Store interface {
	// ClaimValue returns the stored value for (subject, claim, tag).
	// Returns ErrNotFound when nothing is stored under that exact key.
	ClaimValue(ctx context.Context, subject, claim, tag string) (any, error)

	// SaveClaim stores a value under (subject, claim, tag), replacing any
	// previous value.
	SaveClaim(ctx context.Context, subject, claim, tag string, value any) error

	// DeleteSubject removes all claims of a subject.
	DeleteSubject(ctx context.Context, subject string) error
}
