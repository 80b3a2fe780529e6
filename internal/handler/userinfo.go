package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gatekit/internal/audit"
	"gatekit/internal/authapi"
	"gatekit/internal/claims"
	"gatekit/internal/dispatch"
	"gatekit/internal/spi"
	"gatekit/internal/web"
	"gatekit/pkg/requestcontext"
)

// Challenge sent when the userinfo request carries no access token.
const tokenRequiredChallenge = `Bearer error="invalid_token",error_description="An access token is required."`

// HandleUserInfo drives a userinfo request. The access token is the one
// extracted from the Authorization header or the request parameters; "" means
// no token was presented.
func (h *Handler) HandleUserInfo(ctx context.Context, accessToken string, provider spi.UserInfoProvider) *web.Response {
	if accessToken == "" {
		return web.WWWAuthenticate(http.StatusBadRequest, tokenRequiredChallenge, "")
	}
	if provider == nil {
		provider = spi.NopUserInfoProvider{}
	}

	start := time.Now()
	res, err := h.api.UserInfo(ctx, &authapi.UserInfoRequest{Token: accessToken})
	h.observe(dispatch.PathUserInfo, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathUserInfo, err)
	}

	h.metrics.IncrementOutcome("userinfo", string(res.Action))

	switch res.Action {
	case authapi.UserInfoActionOK:
		return h.userInfoIssue(ctx, res, provider)
	case authapi.UserInfoActionInternalServerError,
		authapi.UserInfoActionBadRequest,
		authapi.UserInfoActionUnauthorized,
		authapi.UserInfoActionForbidden:
		return dispatch.UserInfoError(res.Action, res.ResponseContent)
	default:
		return h.unknownAction(ctx, dispatch.PathUserInfo)
	}
}

// userInfoIssue collects the requested claims and asks the backend to build
// the userinfo document. Userinfo requests carry no locale preferences; only
// explicit per-claim tags select tagged values.
func (h *Handler) userInfoIssue(ctx context.Context, userInfo *authapi.UserInfoResponse, provider spi.UserInfoProvider) *web.Response {
	req := &authapi.UserInfoIssueRequest{
		Token: userInfo.Token,
		Sub:   provider.Sub(ctx),
	}
	if collected := claims.Collect(ctx, userInfo.Subject, userInfo.Claims, nil, provider); collected != nil {
		serialized, err := json.Marshal(collected)
		if err != nil {
			return h.apiFailure(ctx, dispatch.PathUserInfoIssue, err)
		}
		req.Claims = string(serialized)
	}

	start := time.Now()
	res, err := h.api.UserInfoIssue(ctx, req)
	h.observe(dispatch.PathUserInfoIssue, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathUserInfoIssue, err)
	}

	h.metrics.IncrementOutcome("userinfo", string(res.Action))
	if res.Action == authapi.UserInfoIssueActionJSON || res.Action == authapi.UserInfoIssueActionJWT {
		h.audit.Emit(ctx, audit.Event{
			Action:    audit.ActionUserInfoAccessed,
			Subject:   userInfo.Subject,
			RequestID: requestcontext.RequestID(ctx),
		})
	}
	return dispatch.UserInfoIssue(res.Action, res.ResponseContent)
}
