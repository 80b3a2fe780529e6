package middleware

import (
	"net/http"

	"gatekit/pkg/requestcontext"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "gatekit_session"

// SessionID copies the browser session cookie into the request context. The
// cookie is opaque here; the session store decides whether it names a live
// login.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			ctx := requestcontext.WithSessionID(r.Context(), cookie.Value)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
