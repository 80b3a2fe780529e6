package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (s failingStore) ClaimValue(context.Context, string, string, string) (any, error) {
	return nil, s.err
}

func (s failingStore) SaveClaim(context.Context, string, string, string, any) error {
	return s.err
}

func (s failingStore) DeleteSubject(context.Context, string) error {
	return s.err
}

func TestProviderResolvesStoredValues(t *testing.T) {
	ctx := context.Background()
	backing := NewInMemoryStore()
	require.NoError(t, backing.SaveClaim(ctx, "alice", "email", "", "alice@example.com"))

	provider := NewProvider(backing, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "alice@example.com", provider.UserClaimValue(ctx, "alice", "email", ""))
}

func TestProviderMissIsNil(t *testing.T) {
	provider := NewProvider(NewInMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Nil(t, provider.UserClaimValue(context.Background(), "alice", "email", ""))
}

func TestProviderLookupFailureDegradesToNil(t *testing.T) {
	provider := NewProvider(failingStore{err: errors.New("connection lost")},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Nil(t, provider.UserClaimValue(context.Background(), "alice", "email", ""))
}
