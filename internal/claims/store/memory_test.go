package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and read back", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.SaveClaim(ctx, "alice", "email", "", "alice@example.com"))

		value, err := s.ClaimValue(ctx, "alice", "email", "")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", value)
	})

	t.Run("language tags address distinct values", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.SaveClaim(ctx, "alice", "family_name", "", "Smith"))
		require.NoError(t, s.SaveClaim(ctx, "alice", "family_name", "ja", "スミス"))

		untagged, err := s.ClaimValue(ctx, "alice", "family_name", "")
		require.NoError(t, err)
		assert.Equal(t, "Smith", untagged)

		tagged, err := s.ClaimValue(ctx, "alice", "family_name", "ja")
		require.NoError(t, err)
		assert.Equal(t, "スミス", tagged)
	})

	t.Run("missing value is ErrNotFound", func(t *testing.T) {
		s := NewInMemoryStore()
		_, err := s.ClaimValue(ctx, "alice", "email", "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save replaces the previous value", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.SaveClaim(ctx, "alice", "email", "", "old@example.com"))
		require.NoError(t, s.SaveClaim(ctx, "alice", "email", "", "new@example.com"))

		value, err := s.ClaimValue(ctx, "alice", "email", "")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", value)
	})

	t.Run("delete subject removes all tags but spares other subjects", func(t *testing.T) {
		s := NewInMemoryStore()
		require.NoError(t, s.SaveClaim(ctx, "alice", "family_name", "", "Smith"))
		require.NoError(t, s.SaveClaim(ctx, "alice", "family_name", "ja", "スミス"))
		require.NoError(t, s.SaveClaim(ctx, "bob", "family_name", "", "Jones"))

		require.NoError(t, s.DeleteSubject(ctx, "alice"))

		_, err := s.ClaimValue(ctx, "alice", "family_name", "")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.ClaimValue(ctx, "alice", "family_name", "ja")
		assert.ErrorIs(t, err, ErrNotFound)

		value, err := s.ClaimValue(ctx, "bob", "family_name", "")
		require.NoError(t, err)
		assert.Equal(t, "Jones", value)
	})
}
