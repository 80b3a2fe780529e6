package audit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekit/internal/audit"
	auditmemory "gatekit/internal/audit/store/memory"
)

type failingSink struct {
	mu       sync.Mutex
	attempts int
}

func (s *failingSink) Append(context.Context, audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	return errors.New("broker unavailable")
}

func (s *failingSink) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherStampsAndAppends(t *testing.T) {
	sink := auditmemory.New()
	publisher := audit.NewPublisher(sink, discardLogger())

	publisher.Emit(context.Background(), audit.Event{
		Action:  audit.ActionTokenIssued,
		Subject: "alice",
	})

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionTokenIssued, events[0].Action)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestPublisherKeepsExplicitTimestamp(t *testing.T) {
	sink := auditmemory.New()
	publisher := audit.NewPublisher(sink, discardLogger())

	stamp := time.Unix(1_700_000_000, 0)
	publisher.Emit(context.Background(), audit.Event{
		Action:    audit.ActionTokenRevoked,
		Timestamp: stamp,
	})

	events := sink.Events()
	require.Len(t, events, 1)
	assert.True(t, stamp.Equal(events[0].Timestamp))
}

// An append failure is swallowed; emitting must never panic or propagate.
func TestPublisherDropsFailedAppends(t *testing.T) {
	sink := &failingSink{}
	publisher := audit.NewPublisher(sink, discardLogger())

	publisher.Emit(context.Background(), audit.Event{Action: audit.ActionTokenIssued})
	publisher.Emit(context.Background(), audit.Event{Action: audit.ActionTokenDenied})

	assert.Equal(t, 2, sink.attempts)
}
