// Package handler implements the endpoint flows of the decision layer. Each
// Handle method drives one endpoint: it forwards the request to the backend,
// interprets the returned action code, performs any follow-up calls (issue,
// fail), and reduces the outcome to a web.Response the transport layer can
// write verbatim.
package handler

import (
	"context"
	"log/slog"
	"time"

	"gatekit/internal/audit"
	"gatekit/internal/authapi"
	"gatekit/internal/dispatch"
	"gatekit/internal/handler/metrics"
	"gatekit/internal/web"
)

// Body of the fixed diagnostic returned when a backend call fails. Leaks no
// backend detail.
const serverErrorBody = `{"error":"server_error","error_description":"The request could not be processed."}`

// Handler drives the endpoint flows against the backend. Safe for concurrent
// use; all per-request state lives on the stack.
type Handler struct {
	api     authapi.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   audit.Emitter
}

// New constructs a Handler with its dependencies. A nil emitter disables
// auditing; a nil metrics value disables instrumentation.
func New(api authapi.Client, logger *slog.Logger, m *metrics.Metrics, emitter audit.Emitter) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if emitter == nil {
		emitter = audit.NopEmitter{}
	}
	return &Handler{
		api:     api,
		logger:  logger,
		metrics: m,
		audit:   emitter,
	}
}

// observe records the latency of one backend call.
func (h *Handler) observe(path string, start time.Time) {
	h.metrics.ObserveBackendLatency(path, time.Since(start))
}

// apiFailure logs a failed backend call and renders the fixed diagnostic.
// Transport failures are never retried here; retry policy belongs to the
// transport layer.
func (h *Handler) apiFailure(ctx context.Context, path string, err error) *web.Response {
	h.logger.ErrorContext(ctx, "backend call failed",
		"path", path,
		"error", err,
	)
	return web.InternalServerError(serverErrorBody)
}

// unknownAction records and renders the fallback for an action code outside
// the declared set of a backend call.
func (h *Handler) unknownAction(ctx context.Context, path string) *web.Response {
	h.metrics.IncrementUnknownAction(path)
	h.logger.ErrorContext(ctx, "backend returned unknown action", "path", path)
	return dispatch.UnknownAction(path)
}
