// Package httptransport is the thin HTTP layer of the decision server. It
// extracts credentials, tokens, and parameters from inbound requests, hands
// them to the endpoint handlers, and writes whatever response comes back.
// Protocol decisions never live here.
package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"gatekit/internal/handler"
	"gatekit/internal/session"
	"gatekit/internal/spi"
	"gatekit/internal/web"
	"gatekit/pkg/requestcontext"
)

// Server bundles the endpoint handlers with the stores the SPI providers are
// built from.
type Server struct {
	handler    *handler.Handler
	sessions   session.Store
	claims     spi.ClaimProvider
	tokens     spi.TokenProvider
	logger     *slog.Logger
	sessionTTL time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithTokenProvider sets the capability consulted by the password grant.
func WithTokenProvider(provider spi.TokenProvider) Option {
	return func(s *Server) {
		if provider != nil {
			s.tokens = provider
		}
	}
}

// WithSessionTTL bounds how long a login created through the login endpoint
// stays valid.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// NewServer constructs the HTTP layer. A nil claims provider resolves no
// claims; a nil session store keeps every request unauthenticated.
func NewServer(h *handler.Handler, sessions session.Store, claims spi.ClaimProvider, logger *slog.Logger, opts ...Option) *Server {
	if sessions == nil {
		sessions = session.NewInMemoryStore()
	}
	if claims == nil {
		claims = spi.NopClaimProvider{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		handler:    h,
		sessions:   sessions,
		claims:     claims,
		tokens:     spi.NopTokenProvider{},
		logger:     logger,
		sessionTTL: time.Hour,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// currentSession resolves the browser session named by the request context,
// or nil when there is no live login.
func (s *Server) currentSession(ctx context.Context) *session.Session {
	sessionID := requestcontext.SessionID(ctx)
	if sessionID == "" {
		return nil
	}
	found, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.ErrorContext(ctx, "session lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return nil
	}
	return found
}

// write sends a finished endpoint response to the client.
func (s *Server) write(ctx context.Context, w http.ResponseWriter, res *web.Response) {
	if err := res.Write(w); err != nil {
		s.logger.ErrorContext(ctx, "write response failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// readBody drains the request body into a string. The decision backend wants
// the raw urlencoded parameters, not a parsed form.
func readBody(r *http.Request) string {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	return string(body)
}
