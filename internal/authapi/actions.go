package authapi

// Each backend operation answers with a discrete action code describing the
// next step the endpoint implementation must take. The sets below are closed
// on our side but the backend vocabulary can grow independently, so every
// switch over an action type must keep an unknown-action arm.

// AuthorizationAction is the action of an /auth/authorization response.
type AuthorizationAction string

const (
	AuthorizationActionInternalServerError AuthorizationAction = "INTERNAL_SERVER_ERROR"
	AuthorizationActionBadRequest          AuthorizationAction = "BAD_REQUEST"
	AuthorizationActionLocation            AuthorizationAction = "LOCATION"
	AuthorizationActionForm                AuthorizationAction = "FORM"
	AuthorizationActionInteraction         AuthorizationAction = "INTERACTION"
	AuthorizationActionNoInteraction       AuthorizationAction = "NO_INTERACTION"
)

// AuthorizationIssueAction is the action of an /auth/authorization/issue response.
type AuthorizationIssueAction string

const (
	AuthorizationIssueActionInternalServerError AuthorizationIssueAction = "INTERNAL_SERVER_ERROR"
	AuthorizationIssueActionBadRequest          AuthorizationIssueAction = "BAD_REQUEST"
	AuthorizationIssueActionLocation            AuthorizationIssueAction = "LOCATION"
	AuthorizationIssueActionForm                AuthorizationIssueAction = "FORM"
)

// AuthorizationFailAction is the action of an /auth/authorization/fail response.
type AuthorizationFailAction string

const (
	AuthorizationFailActionInternalServerError AuthorizationFailAction = "INTERNAL_SERVER_ERROR"
	AuthorizationFailActionBadRequest          AuthorizationFailAction = "BAD_REQUEST"
	AuthorizationFailActionLocation            AuthorizationFailAction = "LOCATION"
	AuthorizationFailActionForm                AuthorizationFailAction = "FORM"
)

// AuthorizationFailReason tells the backend why an authorization request
// could not be completed. The set is closed; policy denials map onto it.
type AuthorizationFailReason string

const (
	FailReasonUnknown            AuthorizationFailReason = "UNKNOWN"
	FailReasonNotLoggedIn        AuthorizationFailReason = "NOT_LOGGED_IN"
	FailReasonMaxAgeNotSupported AuthorizationFailReason = "MAX_AGE_NOT_SUPPORTED"
	FailReasonExceedsMaxAge      AuthorizationFailReason = "EXCEEDS_MAX_AGE"
	FailReasonDifferentSubject   AuthorizationFailReason = "DIFFERENT_SUBJECT"
	FailReasonAcrNotSatisfied    AuthorizationFailReason = "ACR_NOT_SATISFIED"
	FailReasonDenied             AuthorizationFailReason = "DENIED"
	FailReasonServerError        AuthorizationFailReason = "SERVER_ERROR"
	FailReasonNotAuthenticated   AuthorizationFailReason = "NOT_AUTHENTICATED"
)

// TokenAction is the action of an /auth/token response.
type TokenAction string

const (
	TokenActionInvalidClient       TokenAction = "INVALID_CLIENT"
	TokenActionInternalServerError TokenAction = "INTERNAL_SERVER_ERROR"
	TokenActionBadRequest          TokenAction = "BAD_REQUEST"
	TokenActionPassword            TokenAction = "PASSWORD"
	TokenActionOK                  TokenAction = "OK"
	// TokenActionIDTokenReissuable signals that a new ID token may be issued
	// on the refresh-token flow. Reissuance is not implemented; the token
	// response content is returned to the client as-is.
	TokenActionIDTokenReissuable TokenAction = "ID_TOKEN_REISSUABLE"
)

// TokenFailReason tells the backend why a token request failed.
type TokenFailReason string

const (
	TokenFailReasonUnknown                         TokenFailReason = "UNKNOWN"
	TokenFailReasonInvalidResourceOwnerCredentials TokenFailReason = "INVALID_RESOURCE_OWNER_CREDENTIALS"
	TokenFailReasonInvalidTarget                   TokenFailReason = "INVALID_TARGET"
)

// TokenIssueAction is the action of an /auth/token/issue response.
type TokenIssueAction string

const (
	TokenIssueActionInternalServerError TokenIssueAction = "INTERNAL_SERVER_ERROR"
	TokenIssueActionOK                  TokenIssueAction = "OK"
)

// TokenFailAction is the action of an /auth/token/fail response.
type TokenFailAction string

const (
	TokenFailActionInternalServerError TokenFailAction = "INTERNAL_SERVER_ERROR"
	TokenFailActionBadRequest          TokenFailAction = "BAD_REQUEST"
)

// RevocationAction is the action of an /auth/revocation response.
type RevocationAction string

const (
	RevocationActionInvalidClient       RevocationAction = "INVALID_CLIENT"
	RevocationActionInternalServerError RevocationAction = "INTERNAL_SERVER_ERROR"
	RevocationActionBadRequest          RevocationAction = "BAD_REQUEST"
	RevocationActionOK                  RevocationAction = "OK"
)

// IntrospectionAction is the action of an /auth/introspection response.
type IntrospectionAction string

const (
	IntrospectionActionInternalServerError IntrospectionAction = "INTERNAL_SERVER_ERROR"
	IntrospectionActionBadRequest          IntrospectionAction = "BAD_REQUEST"
	IntrospectionActionUnauthorized        IntrospectionAction = "UNAUTHORIZED"
	IntrospectionActionForbidden           IntrospectionAction = "FORBIDDEN"
	IntrospectionActionOK                  IntrospectionAction = "OK"
)

// StandardIntrospectionAction is the action of an RFC 7662 introspection response.
type StandardIntrospectionAction string

const (
	StandardIntrospectionActionInternalServerError StandardIntrospectionAction = "INTERNAL_SERVER_ERROR"
	StandardIntrospectionActionBadRequest          StandardIntrospectionAction = "BAD_REQUEST"
	StandardIntrospectionActionOK                  StandardIntrospectionAction = "OK"
)

// UserInfoAction is the action of an /auth/userinfo response.
type UserInfoAction string

const (
	UserInfoActionInternalServerError UserInfoAction = "INTERNAL_SERVER_ERROR"
	UserInfoActionBadRequest          UserInfoAction = "BAD_REQUEST"
	UserInfoActionUnauthorized        UserInfoAction = "UNAUTHORIZED"
	UserInfoActionForbidden           UserInfoAction = "FORBIDDEN"
	UserInfoActionOK                  UserInfoAction = "OK"
)

// UserInfoIssueAction is the action of an /auth/userinfo/issue response.
type UserInfoIssueAction string

const (
	UserInfoIssueActionInternalServerError UserInfoIssueAction = "INTERNAL_SERVER_ERROR"
	UserInfoIssueActionBadRequest          UserInfoIssueAction = "BAD_REQUEST"
	UserInfoIssueActionUnauthorized        UserInfoIssueAction = "UNAUTHORIZED"
	UserInfoIssueActionForbidden           UserInfoIssueAction = "FORBIDDEN"
	UserInfoIssueActionJSON                UserInfoIssueAction = "JSON"
	UserInfoIssueActionJWT                 UserInfoIssueAction = "JWT"
)

// PushedAuthReqAction is the action of a /pushed_auth_req response.
type PushedAuthReqAction string

const (
	PushedAuthReqActionCreated             PushedAuthReqAction = "CREATED"
	PushedAuthReqActionBadRequest          PushedAuthReqAction = "BAD_REQUEST"
	PushedAuthReqActionUnauthorized        PushedAuthReqAction = "UNAUTHORIZED"
	PushedAuthReqActionForbidden           PushedAuthReqAction = "FORBIDDEN"
	PushedAuthReqActionPayloadTooLarge     PushedAuthReqAction = "PAYLOAD_TOO_LARGE"
	PushedAuthReqActionInternalServerError PushedAuthReqAction = "INTERNAL_SERVER_ERROR"
)

// CredentialIssuerMetadataAction is the action of a /vci/metadata response.
type CredentialIssuerMetadataAction string

const (
	CredentialIssuerMetadataActionOK                  CredentialIssuerMetadataAction = "OK"
	CredentialIssuerMetadataActionNotFound            CredentialIssuerMetadataAction = "NOT_FOUND"
	CredentialIssuerMetadataActionInternalServerError CredentialIssuerMetadataAction = "INTERNAL_SERVER_ERROR"
)

// CredentialIssuerJWKSAction is the action of a /vci/jwks response.
type CredentialIssuerJWKSAction string

const (
	CredentialIssuerJWKSActionOK                  CredentialIssuerJWKSAction = "OK"
	CredentialIssuerJWKSActionNotFound            CredentialIssuerJWKSAction = "NOT_FOUND"
	CredentialIssuerJWKSActionInternalServerError CredentialIssuerJWKSAction = "INTERNAL_SERVER_ERROR"
)

// CredentialJWTIssuerMetadataAction is the action of a /vci/jwtissuer response.
type CredentialJWTIssuerMetadataAction string

const (
	CredentialJWTIssuerMetadataActionOK                  CredentialJWTIssuerMetadataAction = "OK"
	CredentialJWTIssuerMetadataActionNotFound            CredentialJWTIssuerMetadataAction = "NOT_FOUND"
	CredentialJWTIssuerMetadataActionInternalServerError CredentialJWTIssuerMetadataAction = "INTERNAL_SERVER_ERROR"
)

// FederationConfigurationAction is the action of a /federation/configuration response.
type FederationConfigurationAction string

const (
	FederationConfigurationActionOK                  FederationConfigurationAction = "OK"
	FederationConfigurationActionNotFound            FederationConfigurationAction = "NOT_FOUND"
	FederationConfigurationActionInternalServerError FederationConfigurationAction = "INTERNAL_SERVER_ERROR"
)

// FederationRegistrationAction is the action of a /federation/registration response.
type FederationRegistrationAction string

const (
	FederationRegistrationActionOK                  FederationRegistrationAction = "OK"
	FederationRegistrationActionBadRequest          FederationRegistrationAction = "BAD_REQUEST"
	FederationRegistrationActionNotFound            FederationRegistrationAction = "NOT_FOUND"
	FederationRegistrationActionInternalServerError FederationRegistrationAction = "INTERNAL_SERVER_ERROR"
)
