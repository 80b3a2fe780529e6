// Package authapi defines the client surface of the remote authorization
// backend. Every operation takes a typed request and returns a typed response
// whose Action field tells the caller which HTTP response to produce. The
// package holds no protocol decision logic itself; that lives in the handler,
// policy, and dispatch packages.
package authapi

import "context"

// Client is the set of backend operations consumed by the endpoint handlers.
// Implementations perform one synchronous call per invocation and never retry;
// transport failures surface as *APIError.
type Client interface {
	// Authorization endpoint family.
	Authorization(ctx context.Context, req *AuthorizationRequest) (*AuthorizationResponse, error)
	AuthorizationIssue(ctx context.Context, req *AuthorizationIssueRequest) (*AuthorizationIssueResponse, error)
	AuthorizationFail(ctx context.Context, req *AuthorizationFailRequest) (*AuthorizationFailResponse, error)

	// Token endpoint family.
	Token(ctx context.Context, req *TokenRequest) (*TokenResponse, error)
	TokenIssue(ctx context.Context, req *TokenIssueRequest) (*TokenIssueResponse, error)
	TokenFail(ctx context.Context, req *TokenFailRequest) (*TokenFailResponse, error)

	// Revocation and introspection.
	Revocation(ctx context.Context, req *RevocationRequest) (*RevocationResponse, error)
	Introspection(ctx context.Context, req *IntrospectionRequest) (*IntrospectionResponse, error)
	StandardIntrospection(ctx context.Context, req *StandardIntrospectionRequest) (*StandardIntrospectionResponse, error)

	// Userinfo.
	UserInfo(ctx context.Context, req *UserInfoRequest) (*UserInfoResponse, error)
	UserInfoIssue(ctx context.Context, req *UserInfoIssueRequest) (*UserInfoIssueResponse, error)

	// Pushed authorization requests (RFC 9126).
	PushAuthorizationRequest(ctx context.Context, req *PushedAuthReqRequest) (*PushedAuthReqResponse, error)

	// Discovery documents. ServiceJWKS may fail with an *APIError carrying
	// a 302 status when the JWK Set is hosted elsewhere.
	ServiceConfiguration(ctx context.Context, req *ServiceConfigurationRequest) (string, error)
	ServiceJWKS(ctx context.Context, pretty, includePrivate bool) (string, error)

	// Verifiable-credential issuer metadata.
	CredentialIssuerMetadata(ctx context.Context, req *CredentialIssuerMetadataRequest) (*CredentialIssuerMetadataResponse, error)
	CredentialIssuerJWKS(ctx context.Context, req *CredentialIssuerJWKSRequest) (*CredentialIssuerJWKSResponse, error)
	CredentialJWTIssuerMetadata(ctx context.Context, req *CredentialJWTIssuerMetadataRequest) (*CredentialJWTIssuerMetadataResponse, error)

	// OpenID Federation 1.0.
	FederationConfiguration(ctx context.Context, req *FederationConfigurationRequest) (*FederationConfigurationResponse, error)
	FederationRegistration(ctx context.Context, req *FederationRegistrationRequest) (*FederationRegistrationResponse, error)
}

// Property is an arbitrary key-value pair associated with an access token
// and/or an authorization code. Properties not marked hidden appear as
// top-level entries in the token response (RFC 6749, 5.1).
type Property struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Hidden bool   `json:"hidden,omitempty"`
}
