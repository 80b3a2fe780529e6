package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type staticClaims struct{}

func (staticClaims) UserClaimValue(_ context.Context, subject, claimName, languageTag string) any {
	if subject == "alice" && claimName == "email" && languageTag == "" {
		return "alice@example.com"
	}
	return nil
}

func TestProviderWithoutSession(t *testing.T) {
	ctx := context.Background()
	provider := NewProvider(nil, nil)

	assert.False(t, provider.UserAuthenticated(ctx))
	assert.Zero(t, provider.UserAuthenticatedAt(ctx))
	assert.Empty(t, provider.UserSubject(ctx))
	assert.Empty(t, provider.ACR(ctx))
	assert.Nil(t, provider.UserClaimValue(ctx, "alice", "email", ""))
}

func TestProviderWithSession(t *testing.T) {
	ctx := context.Background()
	authenticatedAt := time.Unix(1_700_000_000, 0)
	provider := NewProvider(&Session{
		ID:              "sess-1",
		Subject:         "alice",
		AuthenticatedAt: authenticatedAt,
		ACR:             "urn:mace:incommon:iap:silver",
		ExpiresAt:       authenticatedAt.Add(time.Hour),
	}, staticClaims{})

	assert.True(t, provider.UserAuthenticated(ctx))
	assert.Equal(t, authenticatedAt.Unix(), provider.UserAuthenticatedAt(ctx))
	assert.Equal(t, "alice", provider.UserSubject(ctx))
	assert.Equal(t, "urn:mace:incommon:iap:silver", provider.ACR(ctx))
	assert.Equal(t, "alice@example.com", provider.UserClaimValue(ctx, "alice", "email", ""))
}
