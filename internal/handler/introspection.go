package handler

import (
	"context"
	"time"

	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/web"
)

// HandleStandardIntrospection drives an RFC 7662 token introspection request.
func (h *Handler) HandleStandardIntrospection(ctx context.Context, parameters string) *web.Response {
	start := time.Now()
	res, err := h.api.StandardIntrospection(ctx, &authapi.StandardIntrospectionRequest{
		Parameters: parameters,
	})
	h.observe(dispatch.PathStandardIntrospection, start)
	if err != nil {
		return h.apiFailure(ctx, dispatch.PathStandardIntrospection, err)
	}

	h.metrics.IncrementOutcome("introspection", string(res.Action))
	return dispatch.StandardIntrospection(res.Action, res.ResponseContent)
}
