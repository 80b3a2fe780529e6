package handler

import (
	"context"
	"encoding/json"
	"time"

	"gatekit/internal/audit"
	"gatekit/internal/authapi"
	"gatekit/internal/claims"
	"gatekit/internal/dispatch"
	"gatekit/internal/policy"
	"gatekit/internal/spi"
	"gatekit/internal/web"
	"gatekit/pkg/requestcontext"
)

// HandleAuthorization drives an inbound authorization request. The returned
// response is nil exactly when the request needs user interaction; the
// pending authorization is then returned so the caller can render its
// authorization page and later complete the flow with HandleDecision.
func (h *Handler) HandleAuthorization(ctx context.Context, parameters string, provider spi.NoInteractionProvider) (*web.Response, *authapi.AuthorizationResponse) {
	start := time.Now()
	res, err := h.api.Authorization(ctx, &authapi.AuthorizationRequest{Parameters: parameters})
	h.observe(dispatch.PathAuthorization, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathAuthorization, err), nil
	}

	switch res.Action {
	case authapi.AuthorizationActionInteraction:
		return nil, res
	case authapi.AuthorizationActionNoInteraction:
		return h.HandleNoInteraction(ctx, res, provider), nil
	default:
		return h.HandleAuthorizationError(ctx, res), nil
	}
}

// HandleAuthorizationError renders the error actions of a pending
// authorization request. Returns nil for INTERACTION and NO_INTERACTION,
// which are not error cases.
func (h *Handler) HandleAuthorizationError(ctx context.Context, res *authapi.AuthorizationResponse) *web.Response {
	switch res.Action {
	case authapi.AuthorizationActionInteraction, authapi.AuthorizationActionNoInteraction:
		return nil
	case authapi.AuthorizationActionInternalServerError,
		authapi.AuthorizationActionBadRequest,
		authapi.AuthorizationActionLocation,
		authapi.AuthorizationActionForm:
		h.metrics.IncrementOutcome("authorization", string(res.Action))
		return dispatch.AuthorizationError(res.Action, res.ResponseContent)
	default:
		return h.unknownAction(ctx, dispatch.PathAuthorization)
	}
}

// HandleNoInteraction completes an authorization request without user
// interaction. Returns nil when the pending request is not flagged for
// silent completion.
func (h *Handler) HandleNoInteraction(ctx context.Context, res *authapi.AuthorizationResponse, provider spi.NoInteractionProvider) *web.Response {
	if provider == nil {
		provider = spi.NopNoInteractionProvider{}
	}

	verdict, ok := policy.Evaluate(ctx, res, provider, requestcontext.Now(ctx))
	if !ok {
		return nil
	}
	if verdict.Denied() {
		return h.authorizationFail(ctx, res.Ticket, verdict.Reason)
	}
	return h.authorizationIssue(ctx, res.Ticket, verdict.Grant)
}

// HandleDecision completes an authorization request after the user has seen
// the authorization page and made a decision. The claim names and locales
// are the ones announced by the pending authorization.
func (h *Handler) HandleDecision(ctx context.Context, ticket string, claimNames, claimLocales []string, provider spi.DecisionProvider) *web.Response {
	if provider == nil {
		provider = spi.NopDecisionProvider{}
	}

	if !provider.ClientAuthorized(ctx) {
		return h.authorizationFail(ctx, ticket, authapi.FailReasonDenied)
	}

	subject := provider.UserSubject(ctx)
	if subject == "" {
		return h.authorizationFail(ctx, ticket, authapi.FailReasonNotAuthenticated)
	}

	grant := &policy.Grant{
		Subject:    subject,
		AuthTime:   provider.UserAuthenticatedAt(ctx),
		ACR:        provider.ACR(ctx),
		Sub:        provider.Sub(ctx),
		Claims:     claims.Collect(ctx, subject, claimNames, claimLocales, provider),
		Properties: provider.Properties(ctx),
		Scopes:     provider.Scopes(ctx),
	}
	return h.authorizationIssue(ctx, ticket, grant)
}

// authorizationIssue calls the backend's issue operation and renders the
// outcome. The grant's claim bag is serialized to JSON; an absent bag stays
// absent rather than becoming "{}".
func (h *Handler) authorizationIssue(ctx context.Context, ticket string, grant *policy.Grant) *web.Response {
	req := &authapi.AuthorizationIssueRequest{
		Ticket:     ticket,
		Subject:    grant.Subject,
		AuthTime:   grant.AuthTime,
		Acr:        grant.ACR,
		Properties: grant.Properties,
		Scopes:     grant.Scopes,
		Sub:        grant.Sub,
	}
	if grant.Claims != nil {
		serialized, err := json.Marshal(grant.Claims)
		if err != nil {
			return h.apiFailure(ctx, dispatch.PathAuthorizationIssue, err)
		}
		req.Claims = string(serialized)
	}

	start := time.Now()
	res, err := h.api.AuthorizationIssue(ctx, req)
	h.observe(dispatch.PathAuthorizationIssue, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathAuthorizationIssue, err)
	}

	h.metrics.IncrementOutcome("authorization", string(res.Action))
	if res.Action == authapi.AuthorizationIssueActionLocation || res.Action == authapi.AuthorizationIssueActionForm {
		h.audit.Emit(ctx, audit.Event{
			Action:    audit.ActionAuthorizationIssued,
			Subject:   grant.Subject,
			RequestID: requestcontext.RequestID(ctx),
		})
	}
	return dispatch.AuthorizationIssue(res.Action, res.ResponseContent)
}

// authorizationFail calls the backend's fail operation and renders the
// outcome. Policy denials and explicit user denials both come through here,
// so the response shape is identical for either.
func (h *Handler) authorizationFail(ctx context.Context, ticket string, reason authapi.AuthorizationFailReason) *web.Response {
	start := time.Now()
	res, err := h.api.AuthorizationFail(ctx, &authapi.AuthorizationFailRequest{
		Ticket: ticket,
		Reason: reason,
	})
	h.observe(dispatch.PathAuthorizationFail, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathAuthorizationFail, err)
	}

	h.metrics.IncrementOutcome("authorization", string(res.Action))
	h.audit.Emit(ctx, audit.Event{
		Action:    audit.ActionAuthorizationDenied,
		RequestID: requestcontext.RequestID(ctx),
		Reason:    string(reason),
	})
	return dispatch.AuthorizationFail(res.Action, res.ResponseContent)
}
