package httptransport

import (
	"net/http"

	"gatekit/internal/handler"
	"gatekit/internal/web"
)

// handlePushedAuthReq serves the pushed authorization request endpoint.
// Mutual-TLS client certificates arrive through the reverse proxy's
// Client-Cert or X-Ssl-Cert header.
func (s *Server) handlePushedAuthReq(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := s.handler.HandlePushedAuthReq(ctx, handler.PushedAuthReq{
		Parameters:        readBody(r),
		Credentials:       web.ParseBasicCredentials(r.Header.Get("Authorization")),
		ClientCertificate: web.ExtractClientCertificate(r.Header.Get("Client-Cert"), r.Header.Get("X-Ssl-Cert")),
		DPoP:              r.Header.Get("DPoP"),
	})
	s.write(ctx, w, res)
}
