// Package protect validates access tokens presented at protected resource
// endpoints by delegating to the backend's introspection call. Each
// validation produces a fresh Result value, so a Validator can serve many
// sequential requests without one call's outcome leaking into the next.
package protect

import (
	"context"
	"net/http"

	"gatekit/internal/authapi"
	"gatekit/internal/web"
)

// Challenge sent when the introspection call itself fails. Complies with
// RFC 6750 and leaks no backend detail.
const serverErrorChallenge = `Bearer error="server_error",error_description="Introspection API call failed."`

// Request describes one access-token validation. Scopes and Subject are
// optional; when set the backend enforces scope coverage and subject binding.
type Request struct {
	Token   string
	Scopes  []string
	Subject string
}

// Result is the complete outcome of one validation. Exactly one of
// Introspection and Err is set; ErrorResponse is ready to send whenever
// Valid is false.
type Result struct {
	Valid         bool
	Introspection *authapi.IntrospectionResponse
	Err           error
	ErrorResponse *web.Response
}

// Validator validates access tokens against the backend. The zero value is
// unusable; construct with New. A Validator holds no per-call state and is
// safe for concurrent use.
type Validator struct {
	api authapi.Client
}

// New returns a Validator backed by the given client.
func New(api authapi.Client) *Validator {
	return &Validator{api: api}
}

// Validate introspects the token and reduces the outcome to a Result. A
// transport failure yields a synthesized 500 challenge; a non-OK action
// yields the backend's challenge verbatim under the status its action maps
// to.
func (v *Validator) Validate(ctx context.Context, req Request) *Result {
	res, err := v.api.Introspection(ctx, &authapi.IntrospectionRequest{
		Token:   req.Token,
		Scopes:  req.Scopes,
		Subject: req.Subject,
	})
	if err != nil {
		return &Result{
			Err:           err,
			ErrorResponse: web.WWWAuthenticate(http.StatusInternalServerError, serverErrorChallenge, ""),
		}
	}

	if res.Action == authapi.IntrospectionActionOK {
		return &Result{Valid: true, Introspection: res}
	}

	return &Result{
		Introspection: res,
		ErrorResponse: web.WWWAuthenticate(challengeStatus(res.Action), res.ResponseContent, ""),
	}
}

func challengeStatus(action authapi.IntrospectionAction) int {
	switch action {
	case authapi.IntrospectionActionInternalServerError:
		return http.StatusInternalServerError
	case authapi.IntrospectionActionBadRequest:
		return http.StatusBadRequest
	case authapi.IntrospectionActionUnauthorized:
		return http.StatusUnauthorized
	case authapi.IntrospectionActionForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
