package session

import (
	"context"

	"gatekit/internal/authapi"
	"gatekit/internal/spi"
)

// Provider adapts a resolved session to the no-interaction capability the
// authorization handler consumes. Construct one per request with the session
// looked up from the browser's cookie; a nil session means no active login.
type Provider struct {
	session *Session
	claims  spi.ClaimProvider
}

func NewProvider(session *Session, claims spi.ClaimProvider) *Provider {
	if claims == nil {
		claims = spi.NopClaimProvider{}
	}
	return &Provider{session: session, claims: claims}
}

func (p *Provider) UserAuthenticated(context.Context) bool {
	return p.session != nil
}

func (p *Provider) UserAuthenticatedAt(context.Context) int64 {
	if p.session == nil {
		return 0
	}
	return p.session.AuthenticatedAt.Unix()
}

func (p *Provider) UserSubject(context.Context) string {
	if p.session == nil {
		return ""
	}
	return p.session.Subject
}

func (p *Provider) ACR(context.Context) string {
	if p.session == nil {
		return ""
	}
	return p.session.ACR
}

func (p *Provider) Sub(context.Context) string { return "" }

func (p *Provider) Properties(context.Context) []authapi.Property { return nil }

func (p *Provider) Scopes(context.Context) []string { return nil }

func (p *Provider) UserClaimValue(ctx context.Context, subject, claimName, languageTag string) any {
	return p.claims.UserClaimValue(ctx, subject, claimName, languageTag)
}
