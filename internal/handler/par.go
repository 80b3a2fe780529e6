package handler

import (
	"context"
	"time"

	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/web"
)

// PushedAuthReq carries everything extracted from an inbound RFC 9126 pushed
// authorization request.
type PushedAuthReq struct {
	Parameters        string
	Credentials       web.Credentials
	ClientCertificate string
	DPoP              string
}

// HandlePushedAuthReq drives a pushed authorization request. A DPoP nonce
// issued by the backend is echoed as a response header on every status.
func (h *Handler) HandlePushedAuthReq(ctx context.Context, req PushedAuthReq) *web.Response {
	start := time.Now()
	res, err := h.api.PushAuthorizationRequest(ctx, &authapi.PushedAuthReqRequest{
		Parameters:        req.Parameters,
		ClientID:          req.Credentials.UserID,
		ClientSecret:      req.Credentials.Password,
		ClientCertificate: req.ClientCertificate,
		Dpop:              req.DPoP,
	})
	h.observe(dispatch.PathPushedAuthReq, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathPushedAuthReq, err)
	}

	h.metrics.IncrementOutcome("par", string(res.Action))
	return dispatch.PushedAuthReq(res.Action, res.ResponseContent).
		WithHeader("DPoP-Nonce", res.DpopNonce)
}
