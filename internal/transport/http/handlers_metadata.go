package httptransport

import (
	"net/http"
	"strings"
)

func (s *Server) handleServiceConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pretty := r.URL.Query().Get("pretty") == "true"
	s.write(ctx, w, s.handler.HandleServiceConfiguration(ctx, pretty))
}

func (s *Server) handleServiceJWKS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pretty := r.URL.Query().Get("pretty") == "true"
	s.write(ctx, w, s.handler.HandleServiceJWKS(ctx, pretty))
}

func (s *Server) handleCredentialIssuerMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pretty := r.URL.Query().Get("pretty") == "true"
	s.write(ctx, w, s.handler.HandleCredentialIssuerMetadata(ctx, pretty))
}

func (s *Server) handleCredentialIssuerJWKS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pretty := r.URL.Query().Get("pretty") == "true"
	s.write(ctx, w, s.handler.HandleCredentialIssuerJWKS(ctx, pretty))
}

func (s *Server) handleCredentialJWTIssuerMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pretty := r.URL.Query().Get("pretty") == "true"
	s.write(ctx, w, s.handler.HandleCredentialJWTIssuerMetadata(ctx, pretty))
}

func (s *Server) handleFederationConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var entityTypes []string
	if raw := r.URL.Query().Get("entityTypes"); raw != "" {
		entityTypes = strings.Split(raw, ",")
	}
	s.write(ctx, w, s.handler.HandleFederationConfiguration(ctx, entityTypes))
}

func (s *Server) handleFederationRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	res := s.handler.HandleFederationRegistration(ctx,
		r.PostFormValue("entity_configuration"),
		r.PostFormValue("trust_chain"),
	)
	s.write(ctx, w, res)
}
