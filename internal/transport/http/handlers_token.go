package httptransport

import (
	"net/http"

	"gatekit/internal/web"
)

// handleToken serves the token endpoint. Client credentials arrive in the
// Authorization header; the grant parameters stay in the raw body.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentials := web.ParseBasicCredentials(r.Header.Get("Authorization"))
	res := s.handler.HandleToken(ctx, readBody(r), credentials, s.tokens)
	s.write(ctx, w, res)
}

func (s *Server) handleRevocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentials := web.ParseBasicCredentials(r.Header.Get("Authorization"))
	res := s.handler.HandleRevocation(ctx, readBody(r), credentials)
	s.write(ctx, w, res)
}

func (s *Server) handleIntrospection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := s.handler.HandleStandardIntrospection(ctx, readBody(r))
	s.write(ctx, w, res)
}
