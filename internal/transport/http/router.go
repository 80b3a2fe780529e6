package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gatekit/internal/platform/metrics"
	"gatekit/internal/platform/middleware"
)

// Router wires all endpoints. Well-known documents live at their registered
// paths; everything else sits under /auth.
func (s *Server) Router(httpMetrics *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.SessionID)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	r.Get("/auth/authorization", s.handleAuthorization)
	r.Post("/auth/authorization", s.handleAuthorization)
	r.Post("/auth/authorization/decision", s.handleAuthorizationDecision)

	r.Post("/auth/token", s.handleToken)
	r.Post("/auth/revocation", s.handleRevocation)
	r.Post("/auth/introspection", s.handleIntrospection)

	r.Get("/auth/userinfo", s.handleUserInfo)
	r.Post("/auth/userinfo", s.handleUserInfo)

	r.Post("/auth/par", s.handlePushedAuthReq)

	r.Post("/auth/login", s.handleLogin)
	r.Post("/auth/logout", s.handleLogout)

	r.Get("/.well-known/openid-configuration", s.handleServiceConfiguration)
	r.Get("/auth/jwks", s.handleServiceJWKS)
	r.Get("/.well-known/openid-credential-issuer", s.handleCredentialIssuerMetadata)
	r.Get("/vci/jwks", s.handleCredentialIssuerJWKS)
	r.Get("/.well-known/jwt-vc-issuer", s.handleCredentialJWTIssuerMetadata)
	r.Get("/.well-known/openid-federation", s.handleFederationConfiguration)
	r.Post("/federation/register", s.handleFederationRegistration)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
