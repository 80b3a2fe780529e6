//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"gatekit/internal/claims/store"
	"gatekit/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "user_claims"))
}

func (s *PostgresStoreSuite) TestSaveAndRead() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "email", "", "alice@example.com"))

	value, err := s.store.ClaimValue(ctx, "alice", "email", "")
	s.Require().NoError(err)
	s.Equal("alice@example.com", value)
}

func (s *PostgresStoreSuite) TestStructuredClaimRoundTrips() {
	ctx := context.Background()
	address := map[string]any{
		"street_address": "1234 Hollywood Blvd.",
		"locality":       "Los Angeles",
		"country":        "US",
	}

	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "address", "", address))

	value, err := s.store.ClaimValue(ctx, "alice", "address", "")
	s.Require().NoError(err)
	s.Equal(address, value)
}

func (s *PostgresStoreSuite) TestLanguageTagsAddressDistinctValues() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "family_name", "", "Smith"))
	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "family_name", "ja", "スミス"))

	untagged, err := s.store.ClaimValue(ctx, "alice", "family_name", "")
	s.Require().NoError(err)
	s.Equal("Smith", untagged)

	tagged, err := s.store.ClaimValue(ctx, "alice", "family_name", "ja")
	s.Require().NoError(err)
	s.Equal("スミス", tagged)
}

func (s *PostgresStoreSuite) TestMissingClaimIsErrNotFound() {
	_, err := s.store.ClaimValue(context.Background(), "alice", "email", "")
	s.Require().ErrorIs(err, store.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpsertReplacesValue() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "email", "", "old@example.com"))
	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "email", "", "new@example.com"))

	value, err := s.store.ClaimValue(ctx, "alice", "email", "")
	s.Require().NoError(err)
	s.Equal("new@example.com", value)
}

func (s *PostgresStoreSuite) TestDeleteSubject() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveClaim(ctx, "alice", "email", "", "alice@example.com"))
	s.Require().NoError(s.store.SaveClaim(ctx, "bob", "email", "", "bob@example.com"))

	s.Require().NoError(s.store.DeleteSubject(ctx, "alice"))

	_, err := s.store.ClaimValue(ctx, "alice", "email", "")
	s.Require().ErrorIs(err, store.ErrNotFound)

	value, err := s.store.ClaimValue(ctx, "bob", "email", "")
	s.Require().NoError(err)
	s.Equal("bob@example.com", value)
}
