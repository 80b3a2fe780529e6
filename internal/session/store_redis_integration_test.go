//go:build integration

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"gatekit/internal/session"
	"gatekit/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *session.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = session.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func makeSession(ttl time.Duration) *session.Session {
	now := time.Now().Truncate(time.Second)
	return &session.Session{
		ID:              uuid.NewString(),
		Subject:         "alice",
		AuthenticatedAt: now,
		ACR:             "urn:mace:incommon:iap:bronze",
		ExpiresAt:       now.Add(ttl),
	}
}

func (s *RedisStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	sess := makeSession(time.Hour)

	s.Require().NoError(s.store.Save(ctx, sess))

	found, err := s.store.Find(ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(sess.Subject, found.Subject)
	s.Equal(sess.ACR, found.ACR)
	s.True(sess.AuthenticatedAt.Equal(found.AuthenticatedAt))
}

func (s *RedisStoreSuite) TestFindUnknownID() {
	_, err := s.store.Find(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, session.ErrNotFound)
}

func (s *RedisStoreSuite) TestSaveRejectsExpiredSession() {
	sess := makeSession(-time.Minute)
	err := s.store.Save(context.Background(), sess)
	s.Require().Error(err)
}

func (s *RedisStoreSuite) TestSessionExpiresWithTTL() {
	ctx := context.Background()
	sess := makeSession(time.Second)

	s.Require().NoError(s.store.Save(ctx, sess))

	s.Require().Eventually(func() bool {
		_, err := s.store.Find(ctx, sess.ID)
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *RedisStoreSuite) TestDelete() {
	ctx := context.Background()
	sess := makeSession(time.Hour)
	s.Require().NoError(s.store.Save(ctx, sess))

	s.Require().NoError(s.store.Delete(ctx, sess.ID))

	_, err := s.store.Find(ctx, sess.ID)
	s.Require().ErrorIs(err, session.ErrNotFound)
}
