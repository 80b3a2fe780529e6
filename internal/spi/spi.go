// Package spi declares the capability interfaces an integrating application
// implements to plug its own user store, session state, and authorization
// decisions into the endpoint handlers. Each handler asks for exactly the
// capability it needs; the Nop types are named default implementations for
// capabilities an application does not support.
package spi

import (
	"context"

	"gatekit/internal/authapi"
)

// ClaimProvider resolves a single claim value of a user. A nil return means
// the value is not available. Values are strings in most cases; structured
// claims such as "address" return a JSON-marshalable object. The collector
// may call this several times per claim while negotiating locales.
type ClaimProvider interface {
	UserClaimValue(ctx context.Context, subject, claimName, languageTag string) any
}

// AuthorizationProvider exposes the authenticated-user context consulted
// while completing an authorization request.
type AuthorizationProvider interface {
	ClaimProvider

	// UserAuthenticatedAt is the authentication time in seconds since the
	// Unix epoch, 0 when unknown.
	UserAuthenticatedAt(ctx context.Context) int64

	// UserSubject is the unique identifier of the current user.
	UserSubject(ctx context.Context) string

	// Sub overrides the "sub" claim embedded in issued ID tokens. When "",
	// the user subject is used.
	Sub(ctx context.Context) string

	// ACR is the authentication context class reference satisfied when the
	// current user was authenticated.
	ACR(ctx context.Context) string

	// Properties are arbitrary key-value pairs to associate with issued
	// tokens and codes.
	Properties(ctx context.Context) []authapi.Property

	// Scopes, when non-nil, replaces the scope set of the original
	// authorization request.
	Scopes(ctx context.Context) []string
}

// NoInteractionProvider is the capability required to complete an
// authorization request without user interaction.
type NoInteractionProvider interface {
	AuthorizationProvider

	// UserAuthenticated reports whether the user has an active login.
	UserAuthenticated(ctx context.Context) bool
}

// DecisionProvider is the capability required after the user has seen the
// authorization page and made a decision.
type DecisionProvider interface {
	AuthorizationProvider

	// ClientAuthorized reports whether the user granted the client's request.
	ClientAuthorized(ctx context.Context) bool
}

// UserInfoProvider is the capability required by the userinfo endpoint.
type UserInfoProvider interface {
	ClaimProvider

	// Sub overrides the "sub" claim of the userinfo response. When "", the
	// subject associated with the access token is used.
	Sub(ctx context.Context) string
}

// TokenProvider is the capability required by the token endpoint. Only the
// legacy resource-owner password grant consults AuthenticateUser.
type TokenProvider interface {
	// AuthenticateUser validates resource-owner credentials and returns the
	// user's subject, or "" when authentication fails. Applications that do
	// not support the password grant return "".
	AuthenticateUser(ctx context.Context, username, password string) string

	// Properties are arbitrary key-value pairs to associate with issued tokens.
	Properties(ctx context.Context) []authapi.Property
}

// NopClaimProvider resolves no claims.
type NopClaimProvider struct{}

func (NopClaimProvider) UserClaimValue(context.Context, string, string, string) any { return nil }

// NopAuthorizationProvider reports no authenticated-user context. Embed it to
// implement only the methods an application cares about.
type NopAuthorizationProvider struct {
	NopClaimProvider
}

func (NopAuthorizationProvider) UserAuthenticatedAt(context.Context) int64     { return 0 }
func (NopAuthorizationProvider) UserSubject(context.Context) string            { return "" }
func (NopAuthorizationProvider) Sub(context.Context) string                    { return "" }
func (NopAuthorizationProvider) ACR(context.Context) string                    { return "" }
func (NopAuthorizationProvider) Properties(context.Context) []authapi.Property { return nil }
func (NopAuthorizationProvider) Scopes(context.Context) []string               { return nil }

// NopNoInteractionProvider denies silent completion: no user is authenticated.
type NopNoInteractionProvider struct {
	NopAuthorizationProvider
}

func (NopNoInteractionProvider) UserAuthenticated(context.Context) bool { return false }

// NopDecisionProvider reports that the user denied the request.
type NopDecisionProvider struct {
	NopAuthorizationProvider
}

func (NopDecisionProvider) ClientAuthorized(context.Context) bool { return false }

// NopUserInfoProvider resolves no claims and keeps the token's subject as "sub".
type NopUserInfoProvider struct {
	NopClaimProvider
}

func (NopUserInfoProvider) Sub(context.Context) string { return "" }

// NopTokenProvider rejects the password grant and attaches no properties.
type NopTokenProvider struct{}

func (NopTokenProvider) AuthenticateUser(context.Context, string, string) string { return "" }
func (NopTokenProvider) Properties(context.Context) []authapi.Property           { return nil }
