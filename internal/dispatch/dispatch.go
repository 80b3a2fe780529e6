// Package dispatch maps backend action codes to HTTP responses, one lookup
// table per endpoint family. Flow actions that need more than a rendering
// decision (PASSWORD, userinfo OK, interaction cases) are resolved by the
// handlers before the table is consulted; every table treats any code it
// does not know as an internal server error naming the backend call that
// produced it, since the backend vocabulary can grow independently of this
// layer.
package dispatch

import (
	"fmt"
	"net/http"

	"gatekit/internal/authapi"
	"gatekit/internal/web"
)

// Backend call paths, used to identify the source of an unknown action.
const (
	PathAuthorization         = "/auth/authorization"
	PathAuthorizationIssue    = "/auth/authorization/issue"
	PathAuthorizationFail     = "/auth/authorization/fail"
	PathToken                 = "/auth/token"
	PathTokenIssue            = "/auth/token/issue"
	PathTokenFail             = "/auth/token/fail"
	PathRevocation            = "/auth/revocation"
	PathStandardIntrospection = "/auth/introspection/standard"
	PathUserInfo              = "/auth/userinfo"
	PathUserInfoIssue         = "/auth/userinfo/issue"
	PathPushedAuthReq         = "/pushed_auth_req"
	PathCredentialMetadata    = "/vci/metadata"
	PathCredentialJWKS        = "/vci/jwks"
	PathCredentialJWTIssuer   = "/vci/jwtissuer"
	PathFederationConfig      = "/federation/configuration"
	PathFederationRegister    = "/federation/registration"
)

type renderer func(content string) *web.Response

// UnknownAction is the safety net for action codes outside the declared set:
// an unconditional 500 whose body identifies the backend call. This signals
// version skew between this layer and the backend, not a client error.
func UnknownAction(apiPath string) *web.Response {
	content := fmt.Sprintf(
		`{"error":"server_error","error_description":"The %s call returned an unknown action."}`,
		apiPath)
	return web.InternalServerError(content)
}

func render[A comparable](table map[A]renderer, action A, content, apiPath string) *web.Response {
	r, ok := table[action]
	if !ok {
		return UnknownAction(apiPath)
	}
	return r(content)
}

func challenge(status int) renderer {
	return func(content string) *web.Response {
		return web.WWWAuthenticate(status, content, "")
	}
}

var authorizationTable = map[authapi.AuthorizationAction]renderer{
	authapi.AuthorizationActionInternalServerError: web.InternalServerError,
	authapi.AuthorizationActionBadRequest:          web.BadRequest,
	authapi.AuthorizationActionLocation:            web.Location,
	authapi.AuthorizationActionForm:                web.OKHTML,
}

// AuthorizationError renders the error actions of a pending authorization
// request. INTERACTION and NO_INTERACTION must be filtered out by the caller.
func AuthorizationError(action authapi.AuthorizationAction, content string) *web.Response {
	return render(authorizationTable, action, content, PathAuthorization)
}

var authorizationIssueTable = map[authapi.AuthorizationIssueAction]renderer{
	authapi.AuthorizationIssueActionInternalServerError: web.InternalServerError,
	authapi.AuthorizationIssueActionBadRequest:          web.BadRequest,
	authapi.AuthorizationIssueActionLocation:            web.Location,
	authapi.AuthorizationIssueActionForm:                web.OKHTML,
}

// AuthorizationIssue renders the outcome of completing an authorization request.
func AuthorizationIssue(action authapi.AuthorizationIssueAction, content string) *web.Response {
	return render(authorizationIssueTable, action, content, PathAuthorizationIssue)
}

var authorizationFailTable = map[authapi.AuthorizationFailAction]renderer{
	authapi.AuthorizationFailActionInternalServerError: web.InternalServerError,
	authapi.AuthorizationFailActionBadRequest:          web.BadRequest,
	authapi.AuthorizationFailActionLocation:            web.Location,
	authapi.AuthorizationFailActionForm:                web.OKHTML,
}

// AuthorizationFail renders the outcome of rejecting an authorization request.
func AuthorizationFail(action authapi.AuthorizationFailAction, content string) *web.Response {
	return render(authorizationFailTable, action, content, PathAuthorizationFail)
}

var tokenTable = map[authapi.TokenAction]renderer{
	authapi.TokenActionInvalidClient: func(content string) *web.Response {
		return web.Unauthorized(`Basic realm="token"`, content)
	},
	authapi.TokenActionInternalServerError: web.InternalServerError,
	authapi.TokenActionBadRequest:          web.BadRequest,
	authapi.TokenActionOK:                  web.OKJSON,
	// ID token reissuance on the refresh flow is not implemented; the token
	// response prepared by the backend is passed through unchanged.
	authapi.TokenActionIDTokenReissuable: web.OKJSON,
}

// Token renders the terminal actions of a token request. PASSWORD must be
// resolved by the caller before dispatching.
func Token(action authapi.TokenAction, content string) *web.Response {
	return render(tokenTable, action, content, PathToken)
}

var tokenIssueTable = map[authapi.TokenIssueAction]renderer{
	authapi.TokenIssueActionInternalServerError: web.InternalServerError,
	authapi.TokenIssueActionOK:                  web.OKJSON,
}

// TokenIssue renders the outcome of issuing tokens.
func TokenIssue(action authapi.TokenIssueAction, content string) *web.Response {
	return render(tokenIssueTable, action, content, PathTokenIssue)
}

var tokenFailTable = map[authapi.TokenFailAction]renderer{
	authapi.TokenFailActionInternalServerError: web.InternalServerError,
	authapi.TokenFailActionBadRequest:          web.BadRequest,
}

// TokenFail renders the outcome of rejecting a token request.
func TokenFail(action authapi.TokenFailAction, content string) *web.Response {
	return render(tokenFailTable, action, content, PathTokenFail)
}

var revocationTable = map[authapi.RevocationAction]renderer{
	authapi.RevocationActionInvalidClient: func(content string) *web.Response {
		return web.Unauthorized(`Basic realm="revocation"`, content)
	},
	authapi.RevocationActionInternalServerError: web.InternalServerError,
	authapi.RevocationActionBadRequest:          web.BadRequest,
	// The 200 response keeps the historical JavaScript content type for
	// compatibility with existing deployments.
	authapi.RevocationActionOK: web.OKJavaScript,
}

// Revocation renders the outcome of an RFC 7009 revocation request.
func Revocation(action authapi.RevocationAction, content string) *web.Response {
	return render(revocationTable, action, content, PathRevocation)
}

var standardIntrospectionTable = map[authapi.StandardIntrospectionAction]renderer{
	authapi.StandardIntrospectionActionInternalServerError: web.InternalServerError,
	authapi.StandardIntrospectionActionBadRequest:          web.BadRequest,
	authapi.StandardIntrospectionActionOK:                  web.OKJSON,
}

// StandardIntrospection renders the outcome of an RFC 7662 introspection request.
func StandardIntrospection(action authapi.StandardIntrospectionAction, content string) *web.Response {
	return render(standardIntrospectionTable, action, content, PathStandardIntrospection)
}

var userInfoTable = map[authapi.UserInfoAction]renderer{
	authapi.UserInfoActionInternalServerError: challenge(http.StatusInternalServerError),
	authapi.UserInfoActionBadRequest:          challenge(http.StatusBadRequest),
	authapi.UserInfoActionUnauthorized:        challenge(http.StatusUnauthorized),
	authapi.UserInfoActionForbidden:           challenge(http.StatusForbidden),
}

// UserInfoError renders the error actions of a userinfo request; the content
// is a WWW-Authenticate challenge, not a body. OK must be resolved by the
// caller before dispatching.
func UserInfoError(action authapi.UserInfoAction, content string) *web.Response {
	return render(userInfoTable, action, content, PathUserInfo)
}

var userInfoIssueTable = map[authapi.UserInfoIssueAction]renderer{
	authapi.UserInfoIssueActionInternalServerError: challenge(http.StatusInternalServerError),
	authapi.UserInfoIssueActionBadRequest:          challenge(http.StatusBadRequest),
	authapi.UserInfoIssueActionUnauthorized:        challenge(http.StatusUnauthorized),
	authapi.UserInfoIssueActionForbidden:           challenge(http.StatusForbidden),
	authapi.UserInfoIssueActionJSON:                web.OKJSON,
	authapi.UserInfoIssueActionJWT:                 web.OKJWT,
}

// UserInfoIssue renders the outcome of building the userinfo document.
func UserInfoIssue(action authapi.UserInfoIssueAction, content string) *web.Response {
	return render(userInfoIssueTable, action, content, PathUserInfoIssue)
}

var pushedAuthReqTable = map[authapi.PushedAuthReqAction]renderer{
	authapi.PushedAuthReqActionCreated:    web.Created,
	authapi.PushedAuthReqActionBadRequest: web.BadRequest,
	authapi.PushedAuthReqActionUnauthorized: func(content string) *web.Response {
		return web.Unauthorized(`Basic realm="par"`, content)
	},
	authapi.PushedAuthReqActionForbidden:           web.Forbidden,
	authapi.PushedAuthReqActionPayloadTooLarge:     web.TooLarge,
	authapi.PushedAuthReqActionInternalServerError: web.InternalServerError,
}

// PushedAuthReq renders the outcome of a pushed authorization request. The
// caller layers the DPoP-Nonce header on top for every status.
func PushedAuthReq(action authapi.PushedAuthReqAction, content string) *web.Response {
	return render(pushedAuthReqTable, action, content, PathPushedAuthReq)
}

var credentialIssuerMetadataTable = map[authapi.CredentialIssuerMetadataAction]renderer{
	authapi.CredentialIssuerMetadataActionOK:                  web.OKJSON,
	authapi.CredentialIssuerMetadataActionNotFound:            web.NotFound,
	authapi.CredentialIssuerMetadataActionInternalServerError: web.InternalServerError,
}

// CredentialIssuerMetadata renders the credential issuer metadata outcome.
func CredentialIssuerMetadata(action authapi.CredentialIssuerMetadataAction, content string) *web.Response {
	return render(credentialIssuerMetadataTable, action, content, PathCredentialMetadata)
}

var credentialIssuerJWKSTable = map[authapi.CredentialIssuerJWKSAction]renderer{
	authapi.CredentialIssuerJWKSActionOK:                  web.OKJSON,
	authapi.CredentialIssuerJWKSActionNotFound:            web.NotFound,
	authapi.CredentialIssuerJWKSActionInternalServerError: web.InternalServerError,
}

// CredentialIssuerJWKS renders the credential issuer JWK Set outcome.
func CredentialIssuerJWKS(action authapi.CredentialIssuerJWKSAction, content string) *web.Response {
	return render(credentialIssuerJWKSTable, action, content, PathCredentialJWKS)
}

var credentialJWTIssuerMetadataTable = map[authapi.CredentialJWTIssuerMetadataAction]renderer{
	authapi.CredentialJWTIssuerMetadataActionOK:                  web.OKJSON,
	authapi.CredentialJWTIssuerMetadataActionNotFound:            web.NotFound,
	authapi.CredentialJWTIssuerMetadataActionInternalServerError: web.InternalServerError,
}

// CredentialJWTIssuerMetadata renders the JWT issuer metadata outcome.
func CredentialJWTIssuerMetadata(action authapi.CredentialJWTIssuerMetadataAction, content string) *web.Response {
	return render(credentialJWTIssuerMetadataTable, action, content, PathCredentialJWTIssuer)
}

var federationConfigurationTable = map[authapi.FederationConfigurationAction]renderer{
	authapi.FederationConfigurationActionOK:                  web.EntityStatement,
	authapi.FederationConfigurationActionNotFound:            web.NotFound,
	authapi.FederationConfigurationActionInternalServerError: web.InternalServerError,
}

// FederationConfiguration renders the entity configuration outcome.
func FederationConfiguration(action authapi.FederationConfigurationAction, content string) *web.Response {
	return render(federationConfigurationTable, action, content, PathFederationConfig)
}

var federationRegistrationTable = map[authapi.FederationRegistrationAction]renderer{
	authapi.FederationRegistrationActionOK:                  web.EntityStatement,
	authapi.FederationRegistrationActionBadRequest:          web.BadRequest,
	authapi.FederationRegistrationActionNotFound:            web.NotFound,
	authapi.FederationRegistrationActionInternalServerError: web.InternalServerError,
}

// FederationRegistration renders the federation registration outcome.
func FederationRegistration(action authapi.FederationRegistrationAction, content string) *web.Response {
	return render(federationRegistrationTable, action, content, PathFederationRegister)
}
