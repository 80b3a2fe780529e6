package httptransport

import (
	"context"
	"net/http"

	"gatekit/internal/spi"
	"gatekit/internal/web"
)

// handleUserInfo serves the userinfo endpoint for both GET and POST. The
// access token is preferred from the Authorization header and falls back to
// the access_token request parameter.
func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken := web.ExtractAccessToken(r.Header.Get("Authorization"))
	if accessToken == "" {
		if err := r.ParseForm(); err == nil {
			accessToken = r.Form.Get("access_token")
		}
	}

	res := s.handler.HandleUserInfo(ctx, accessToken, &userInfoProvider{claims: s.claims})
	s.write(ctx, w, res)
}

// userInfoProvider resolves userinfo claims from the configured claim source.
// The sub is left to the backend's registered value.
type userInfoProvider struct {
	claims spi.ClaimProvider
}

func (p *userInfoProvider) Sub(context.Context) string {
	return ""
}

func (p *userInfoProvider) UserClaimValue(ctx context.Context, subject, claimName, languageTag string) any {
	return p.claims.UserClaimValue(ctx, subject, claimName, languageTag)
}
