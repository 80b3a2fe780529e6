package handler

import (
	"context"
	"time"

	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/web"
)

// HandleFederationConfiguration serves the entity configuration statement
// published under /.well-known/openid-federation (OpenID Federation 1.0).
func (h *Handler) HandleFederationConfiguration(ctx context.Context, entityTypes []string) *web.Response {
	start := time.Now()
	res, err := h.api.FederationConfiguration(ctx, &authapi.FederationConfigurationRequest{
		EntityTypes: entityTypes,
	})
	h.observe(dispatch.PathFederationConfig, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathFederationConfig, err)
	}
	h.metrics.IncrementOutcome("federation_configuration", string(res.Action))
	return dispatch.FederationConfiguration(res.Action, res.ResponseContent)
}

// HandleFederationRegistration drives an explicit client registration request
// at the federation registration endpoint.
func (h *Handler) HandleFederationRegistration(ctx context.Context, entityConfiguration, trustChain string) *web.Response {
	start := time.Now()
	res, err := h.api.FederationRegistration(ctx, &authapi.FederationRegistrationRequest{
		EntityConfiguration: entityConfiguration,
		TrustChain:          trustChain,
	})
	h.observe(dispatch.PathFederationRegister, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathFederationRegister, err)
	}
	h.metrics.IncrementOutcome("federation_registration", string(res.Action))
	return dispatch.FederationRegistration(res.Action, res.ResponseContent)
}
