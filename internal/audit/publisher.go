package audit

import (
	"context"
	"log/slog"
	"time"
)

// Sink persists audit events. Implementations must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
	Close() error
}

// Emitter is the surface handlers depend on.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Publisher writes events to a sink with best-effort semantics: a failed
// append is logged and dropped, never propagated to the request path.
type Publisher struct {
	sink   Sink
	logger *slog.Logger
}

// NewPublisher builds a Publisher over the given sink.
func NewPublisher(sink Sink, logger *slog.Logger) *Publisher {
	return &Publisher{sink: sink, logger: logger}
}

// Emit stamps and appends the event.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := p.sink.Append(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "audit append failed",
			"action", event.Action,
			"subject", event.Subject,
			"error", err,
		)
	}
}

// Close closes the underlying sink.
func (p *Publisher) Close() error {
	return p.sink.Close()
}

// NopEmitter discards all events. The named default for deployments without
// an audit pipeline.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, Event) {}
