package handler

import (
	"context"
	"time"

	"gatekit/internal/audit"
	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/web"
	"gatekit/pkg/requestcontext"
)

// HandleRevocation drives an RFC 7009 token revocation request.
func (h *Handler) HandleRevocation(ctx context.Context, parameters string, credentials web.Credentials) *web.Response {
	start := time.Now()
	res, err := h.api.Revocation(ctx, &authapi.RevocationRequest{
		Parameters:   parameters,
		ClientID:     credentials.UserID,
		ClientSecret: credentials.Password,
	})
	h.observe(dispatch.PathRevocation, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathRevocation, err)
	}

	h.metrics.IncrementOutcome("revocation", string(res.Action))
	if res.Action == authapi.RevocationActionOK {
		h.audit.Emit(ctx, audit.Event{
			Action:    audit.ActionTokenRevoked,
			RequestID: requestcontext.RequestID(ctx),
		})
	}
	return dispatch.Revocation(res.Action, res.ResponseContent)
}
