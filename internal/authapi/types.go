package authapi

// Request and response DTOs for the backend operations. Field names follow
// the backend's JSON vocabulary. Only the fields this layer reads or writes
// are modeled; the backend tolerates absent fields.

// AuthorizationRequest carries the raw query or form parameters of an
// inbound authorization request.
type AuthorizationRequest struct {
	Parameters string `json:"parameters"`
}

// AuthorizationResponse describes a pending authorization request. When
// Action is NO_INTERACTION the policy engine decides whether the request can
// complete silently.
type AuthorizationResponse struct {
	Action          AuthorizationAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	Ticket          string              `json:"ticket,omitempty"`

	// Requirements stated by the authorization request.
	Subject       string   `json:"subject,omitempty"`
	Acrs          []string `json:"acrs,omitempty"`
	AcrEssential  bool     `json:"acrEssential,omitempty"`
	MaxAge        int64    `json:"maxAge,omitempty"`
	Claims        []string `json:"claims,omitempty"`
	ClaimsLocales []string `json:"claimsLocales,omitempty"`
	Scopes        []string `json:"scopes,omitempty"`
}

// AuthorizationIssueRequest completes a pending authorization request.
type AuthorizationIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	AuthTime   int64      `json:"authTime,omitempty"`
	Acr        string     `json:"acr,omitempty"`
	Claims     string     `json:"claims,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Scopes     []string   `json:"scopes,omitempty"`
	Sub        string     `json:"sub,omitempty"`
}

// AuthorizationIssueResponse is the outcome of completing an authorization request.
type AuthorizationIssueResponse struct {
	Action          AuthorizationIssueAction `json:"action"`
	ResponseContent string                   `json:"responseContent,omitempty"`
}

// AuthorizationFailRequest rejects a pending authorization request.
type AuthorizationFailRequest struct {
	Ticket string                  `json:"ticket"`
	Reason AuthorizationFailReason `json:"reason"`
}

// AuthorizationFailResponse is the outcome of rejecting an authorization request.
type AuthorizationFailResponse struct {
	Action          AuthorizationFailAction `json:"action"`
	ResponseContent string                  `json:"responseContent,omitempty"`
}

// TokenRequest carries a token request to the backend. An empty Parameters
// string is a client error while a missing one is a caller error, so callers
// must pass "" rather than leaving the field unset for empty bodies.
type TokenRequest struct {
	Parameters   string     `json:"parameters"`
	ClientID     string     `json:"clientId,omitempty"`
	ClientSecret string     `json:"clientSecret,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
}

// TokenResponse is the backend's verdict on a token request. Username and
// Password are populated only when Action is PASSWORD.
type TokenResponse struct {
	Action          TokenAction `json:"action"`
	ResponseContent string      `json:"responseContent,omitempty"`
	Ticket          string      `json:"ticket,omitempty"`
	Username        string      `json:"username,omitempty"`
	Password        string      `json:"password,omitempty"`
}

// TokenIssueRequest issues tokens for an authenticated resource owner.
type TokenIssueRequest struct {
	Ticket     string     `json:"ticket"`
	Subject    string     `json:"subject"`
	Properties []Property `json:"properties,omitempty"`
}

// TokenIssueResponse is the outcome of issuing tokens.
type TokenIssueResponse struct {
	Action          TokenIssueAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`
}

// TokenFailRequest rejects a token request.
type TokenFailRequest struct {
	Ticket string          `json:"ticket"`
	Reason TokenFailReason `json:"reason"`
}

// TokenFailResponse is the outcome of rejecting a token request.
type TokenFailResponse struct {
	Action          TokenFailAction `json:"action"`
	ResponseContent string          `json:"responseContent,omitempty"`
}

// RevocationRequest carries an RFC 7009 revocation request.
type RevocationRequest struct {
	Parameters   string `json:"parameters"`
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// RevocationResponse is the backend's verdict on a revocation request.
type RevocationResponse struct {
	Action          RevocationAction `json:"action"`
	ResponseContent string           `json:"responseContent,omitempty"`
}

// IntrospectionRequest asks the backend whether an access token is usable.
type IntrospectionRequest struct {
	Token   string   `json:"token"`
	Scopes  []string `json:"scopes,omitempty"`
	Subject string   `json:"subject,omitempty"`
}

// IntrospectionResponse describes an access token. In error cases
// ResponseContent holds a ready-made WWW-Authenticate challenge.
type IntrospectionResponse struct {
	Action          IntrospectionAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	Subject         string              `json:"subject,omitempty"`
	Scopes          []string            `json:"scopes,omitempty"`
	ClientID        int64               `json:"clientId,omitempty"`
}

// StandardIntrospectionRequest carries an RFC 7662 introspection request.
type StandardIntrospectionRequest struct {
	Parameters string `json:"parameters"`
}

// StandardIntrospectionResponse is the backend's verdict on an RFC 7662 request.
type StandardIntrospectionResponse struct {
	Action          StandardIntrospectionAction `json:"action"`
	ResponseContent string                      `json:"responseContent,omitempty"`
}

// UserInfoRequest resolves the access token presented at the userinfo endpoint.
type UserInfoRequest struct {
	Token string `json:"token"`
}

// UserInfoResponse identifies the token's subject and the claims to collect.
type UserInfoResponse struct {
	Action          UserInfoAction `json:"action"`
	ResponseContent string         `json:"responseContent,omitempty"`
	Token           string         `json:"token,omitempty"`
	Subject         string         `json:"subject,omitempty"`
	Claims          []string       `json:"claims,omitempty"`
}

// UserInfoIssueRequest builds the userinfo response document.
type UserInfoIssueRequest struct {
	Token  string `json:"token"`
	Claims string `json:"claims,omitempty"`
	Sub    string `json:"sub,omitempty"`
}

// UserInfoIssueResponse carries the rendered userinfo document.
type UserInfoIssueResponse struct {
	Action          UserInfoIssueAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
}

// PushedAuthReqRequest carries an RFC 9126 pushed authorization request.
type PushedAuthReqRequest struct {
	Parameters        string `json:"parameters"`
	ClientID          string `json:"clientId,omitempty"`
	ClientSecret      string `json:"clientSecret,omitempty"`
	ClientCertificate string `json:"clientCertificate,omitempty"`
	Dpop              string `json:"dpop,omitempty"`
}

// PushedAuthReqResponse is the backend's verdict on a pushed authorization
// request. DpopNonce, when present, is echoed to the client on every status.
type PushedAuthReqResponse struct {
	Action          PushedAuthReqAction `json:"action"`
	ResponseContent string              `json:"responseContent,omitempty"`
	DpopNonce       string              `json:"dpopNonce,omitempty"`
}

// ServiceConfigurationRequest asks for the OpenID Provider configuration document.
type ServiceConfigurationRequest struct {
	Pretty bool `json:"pretty,omitempty"`
}

// CredentialIssuerMetadataRequest asks for the credential issuer metadata.
type CredentialIssuerMetadataRequest struct {
	Pretty bool `json:"pretty,omitempty"`
}

// CredentialIssuerMetadataResponse carries the credential issuer metadata.
type CredentialIssuerMetadataResponse struct {
	Action          CredentialIssuerMetadataAction `json:"action"`
	ResponseContent string                         `json:"responseContent,omitempty"`
}

// CredentialIssuerJWKSRequest asks for the credential issuer JWK Set.
type CredentialIssuerJWKSRequest struct {
	Pretty bool `json:"pretty,omitempty"`
}

// CredentialIssuerJWKSResponse carries the credential issuer JWK Set.
type CredentialIssuerJWKSResponse struct {
	Action          CredentialIssuerJWKSAction `json:"action"`
	ResponseContent string                     `json:"responseContent,omitempty"`
}

// CredentialJWTIssuerMetadataRequest asks for the JWT issuer metadata.
type CredentialJWTIssuerMetadataRequest struct {
	Pretty bool `json:"pretty,omitempty"`
}

// CredentialJWTIssuerMetadataResponse carries the JWT issuer metadata.
type CredentialJWTIssuerMetadataResponse struct {
	Action          CredentialJWTIssuerMetadataAction `json:"action"`
	ResponseContent string                            `json:"responseContent,omitempty"`
}

// FederationConfigurationRequest asks for the entity configuration statement.
type FederationConfigurationRequest struct {
	EntityTypes []string `json:"entityTypes,omitempty"`
}

// FederationConfigurationResponse carries the signed entity statement.
type FederationConfigurationResponse struct {
	Action          FederationConfigurationAction `json:"action"`
	ResponseContent string                        `json:"responseContent,omitempty"`
}

// FederationRegistrationRequest carries an explicit federation registration request.
type FederationRegistrationRequest struct {
	EntityConfiguration string `json:"entityConfiguration,omitempty"`
	TrustChain          string `json:"trustChain,omitempty"`
}

// FederationRegistrationResponse carries the registration outcome.
type FederationRegistrationResponse struct {
	Action          FederationRegistrationAction `json:"action"`
	ResponseContent string                       `json:"responseContent,omitempty"`
}
