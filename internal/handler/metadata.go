package handler

import (
	"context"
	"net/http"
	"time"

	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/web"
)

// Backend paths of the discovery calls, used only for logging and metrics;
// neither call answers with an action code.
const (
	pathServiceConfiguration = "/service/configuration"
	pathServiceJWKS          = "/service/jwks/get"
)

// HandleServiceConfiguration serves the OpenID Provider configuration
// document (OpenID Connect Discovery 1.0, 3).
func (h *Handler) HandleServiceConfiguration(ctx context.Context, pretty bool) *web.Response {
	start := time.Now()
	document, err := h.api.ServiceConfiguration(ctx, &authapi.ServiceConfigurationRequest{Pretty: pretty})
	h.observe(pathServiceConfiguration, start)
	if err != nil {
		return h.apiFailure(ctx, pathServiceConfiguration, err)
	}
	return web.OKJSON(document)
}

// HandleServiceJWKS serves the service's JWK Set document (RFC 7517). An
// empty document renders as 204. When the JWK Set is hosted elsewhere the
// backend answers 302 through the error channel; that redirect is mirrored
// to the client.
func (h *Handler) HandleServiceJWKS(ctx context.Context, pretty bool) *web.Response {
	start := time.Now()
	jwks, err := h.api.ServiceJWKS(ctx, pretty, false)
	h.observe(pathServiceJWKS, start)
	if err != nil {
		if apiErr, ok := authapi.AsAPIError(err); ok && apiErr.StatusCode == http.StatusFound {
			return web.Location(apiErr.Header.Get("Location"))
		}
		return h.apiFailure(ctx, pathServiceJWKS, err)
	}
	if jwks == "" {
		return web.NoContent()
	}
	return web.OKJSON(jwks)
}

// HandleCredentialIssuerMetadata serves the credential issuer metadata
// (OpenID for Verifiable Credential Issuance).
func (h *Handler) HandleCredentialIssuerMetadata(ctx context.Context, pretty bool) *web.Response {
	start := time.Now()
	res, err := h.api.CredentialIssuerMetadata(ctx, &authapi.CredentialIssuerMetadataRequest{Pretty: pretty})
	h.observe(dispatch.PathCredentialMetadata, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathCredentialMetadata, err)
	}
	h.metrics.IncrementOutcome("vci_metadata", string(res.Action))
	return dispatch.CredentialIssuerMetadata(res.Action, res.ResponseContent)
}

// HandleCredentialIssuerJWKS serves the credential issuer's JWK Set.
func (h *Handler) HandleCredentialIssuerJWKS(ctx context.Context, pretty bool) *web.Response {
	start := time.Now()
	res, err := h.api.CredentialIssuerJWKS(ctx, &authapi.CredentialIssuerJWKSRequest{Pretty: pretty})
	h.observe(dispatch.PathCredentialJWKS, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathCredentialJWKS, err)
	}
	h.metrics.IncrementOutcome("vci_jwks", string(res.Action))
	return dispatch.CredentialIssuerJWKS(res.Action, res.ResponseContent)
}

// HandleCredentialJWTIssuerMetadata serves the JWT issuer metadata document
// published under /.well-known/jwt-vc-issuer.
func (h *Handler) HandleCredentialJWTIssuerMetadata(ctx context.Context, pretty bool) *web.Response {
	start := time.Now()
	res, err := h.api.CredentialJWTIssuerMetadata(ctx, &authapi.CredentialJWTIssuerMetadataRequest{Pretty: pretty})
	h.observe(dispatch.PathCredentialJWTIssuer, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathCredentialJWTIssuer, err)
	}
	h.metrics.IncrementOutcome("vci_jwt_issuer", string(res.Action))
	return dispatch.CredentialJWTIssuerMetadata(res.Action, res.ResponseContent)
}
