package handler

import (
	"context"
	"time"

	"gatekit/internal/audit"
	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/spi"
	"gatekit/internal/web"
	"gatekit/pkg/requestcontext"
)

// HandleToken drives a token request. The credentials are the client's Basic
// credentials, zero-valued when the client authenticates through the request
// body instead. The provider is consulted only for the resource-owner
// password grant and the token properties.
func (h *Handler) HandleToken(ctx context.Context, parameters string, credentials web.Credentials, provider spi.TokenProvider) *web.Response {
	if provider == nil {
		provider = spi.NopTokenProvider{}
	}

	start := time.Now()
	res, err := h.api.Token(ctx, &authapi.TokenRequest{
		Parameters:   parameters,
		ClientID:     credentials.UserID,
		ClientSecret: credentials.Password,
		Properties:   provider.Properties(ctx),
	})
	h.observe(dispatch.PathToken, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathToken, err)
	}

	h.metrics.IncrementOutcome("token", string(res.Action))

	switch res.Action {
	case authapi.TokenActionPassword:
		return h.handlePassword(ctx, res, provider)
	case authapi.TokenActionOK, authapi.TokenActionIDTokenReissuable:
		h.audit.Emit(ctx, audit.Event{
			Action:    audit.ActionTokenIssued,
			RequestID: requestcontext.RequestID(ctx),
		})
		return dispatch.Token(res.Action, res.ResponseContent)
	case authapi.TokenActionInvalidClient,
		authapi.TokenActionInternalServerError,
		authapi.TokenActionBadRequest:
		return dispatch.Token(res.Action, res.ResponseContent)
	default:
		return h.unknownAction(ctx, dispatch.PathToken)
	}
}

// handlePassword settles a resource-owner password grant: the backend has
// validated the client and handed back the resource owner's credentials for
// this layer to verify.
func (h *Handler) handlePassword(ctx context.Context, res *authapi.TokenResponse, provider spi.TokenProvider) *web.Response {
	subject := provider.AuthenticateUser(ctx, res.Username, res.Password)
	if subject == "" {
		return h.tokenFail(ctx, res.Ticket, authapi.TokenFailReasonInvalidResourceOwnerCredentials)
	}
	return h.tokenIssue(ctx, res.Ticket, subject, provider.Properties(ctx))
}

// tokenIssue calls the backend's token issue operation and renders the outcome.
func (h *Handler) tokenIssue(ctx context.Context, ticket, subject string, properties []authapi.Property) *web.Response {
	start := time.Now()
	res, err := h.api.TokenIssue(ctx, &authapi.TokenIssueRequest{
		Ticket:     ticket,
		Subject:    subject,
		Properties: properties,
	})
	h.observe(dispatch.PathTokenIssue, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathTokenIssue, err)
	}

	h.metrics.IncrementOutcome("token", string(res.Action))
	if res.Action == authapi.TokenIssueActionOK {
		h.audit.Emit(ctx, audit.Event{
			Action:    audit.ActionTokenIssued,
			Subject:   subject,
			RequestID: requestcontext.RequestID(ctx),
		})
	}
	return dispatch.TokenIssue(res.Action, res.ResponseContent)
}

// tokenFail calls the backend's token fail operation and renders the outcome.
func (h *Handler) tokenFail(ctx context.Context, ticket string, reason authapi.TokenFailReason) *web.Response {
	start := time.Now()
	res, err := h.api.TokenFail(ctx, &authapi.TokenFailRequest{
		Ticket: ticket,
		Reason: reason,
	})
	h.observe(dispatch.PathTokenFail, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathTokenFail, err)
	}

	h.metrics.IncrementOutcome("token", string(res.Action))
	h.audit.Emit(ctx, audit.Event{
		Action:    audit.ActionTokenDenied,
		RequestID: requestcontext.RequestID(ctx),
		Reason:    string(reason),
	})
	return dispatch.TokenFail(res.Action, res.ResponseContent)
}
