package httptransport

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"gatekit/internal/platform/middleware"
	"gatekit/internal/session"
	"gatekit/pkg/requestcontext"
)

// handleLogin authenticates a resource owner and opens a browser session.
// The session cookie is what later authorization requests are judged by.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	subject := s.tokens.AuthenticateUser(ctx, username, password)
	if subject == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_credentials"}`))
		return
	}

	now := time.Now()
	sess := &session.Session{
		ID:              uuid.NewString(),
		Subject:         subject,
		AuthenticatedAt: now,
		ACR:             r.PostFormValue("acr"),
		ExpiresAt:       now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "session save failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"authenticated"}`))
}

// handleLogout closes the current browser session, if any.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID := requestcontext.SessionID(ctx); sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.ErrorContext(ctx, "session delete failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
