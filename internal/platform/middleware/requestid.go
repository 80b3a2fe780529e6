// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"gatekit/pkg/requestcontext"
)

// HeaderRequestID carries the request correlation ID in and out.
const HeaderRequestID = "X-Request-Id"

// RequestID attaches a correlation ID to every request: the inbound header
// value when the caller supplied one, a fresh UUID otherwise. The ID is
// echoed on the response and stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
