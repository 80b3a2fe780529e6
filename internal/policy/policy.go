// Package policy decides whether a pending authorization request can be
// completed without active user interaction. The evaluation is a pure
// function of the pending request, the provider's user context, and the
// clock; it performs no backend calls and keeps no state between requests.
package policy

import (
	"context"
	"time"

	"gatekit/internal/authapi"
	"gatekit/internal/claims"
	"gatekit/internal/spi"
)

// Grant carries everything the issue call needs once every check has passed.
type Grant struct {
	Subject    string
	AuthTime   int64
	ACR        string
	Sub        string
	Claims     map[string]any
	Properties []authapi.Property
	Scopes     []string
}

// Verdict is the outcome of a no-interaction evaluation: either a Grant, or
// a denial carrying the fail reason routed to the backend's fail call.
type Verdict struct {
	Reason authapi.AuthorizationFailReason
	Grant  *Grant
}

// Denied reports whether the verdict rejects silent completion.
func (v Verdict) Denied() bool {
	return v.Grant == nil
}

func deny(reason authapi.AuthorizationFailReason) Verdict {
	return Verdict{Reason: reason}
}

// Evaluate runs the no-interaction checks against a pending authorization
// request. It abstains (ok=false) unless the pending request is flagged for
// silent completion. Checks run in order and short-circuit on the first
// failure:
//
//  1. the user must be currently authenticated,
//  2. a requested nonzero max authentication age must not have elapsed,
//  3. a requested subject must match the current user,
//  4. a requested essential ACR set must contain the achieved ACR.
//
// A non-essential ACR mismatch is advisory and never denies. On success the
// verdict's Grant binds the collected claims and the provider's overrides.
func Evaluate(ctx context.Context, res *authapi.AuthorizationResponse, provider spi.NoInteractionProvider, now time.Time) (Verdict, bool) {
	if res.Action != authapi.AuthorizationActionNoInteraction {
		return Verdict{}, false
	}

	if !provider.UserAuthenticated(ctx) {
		return deny(authapi.FailReasonNotLoggedIn), true
	}

	authTime := provider.UserAuthenticatedAt(ctx)
	if exceedsMaxAge(res.MaxAge, authTime, now) {
		return deny(authapi.FailReasonExceedsMaxAge), true
	}

	subject := provider.UserSubject(ctx)
	if res.Subject != "" && res.Subject != subject {
		return deny(authapi.FailReasonDifferentSubject), true
	}

	acr := provider.ACR(ctx)
	if !acrSatisfied(res.Acrs, res.AcrEssential, acr) {
		return deny(authapi.FailReasonAcrNotSatisfied), true
	}

	grant := &Grant{
		Subject:    subject,
		AuthTime:   authTime,
		ACR:        acr,
		Sub:        provider.Sub(ctx),
		Claims:     claims.Collect(ctx, subject, res.Claims, res.ClaimsLocales, provider),
		Properties: provider.Properties(ctx),
		Scopes:     provider.Scopes(ctx),
	}
	return Verdict{Grant: grant}, true
}

// exceedsMaxAge reports whether the authentication is older than the
// requested maximum age. A max age of zero means no constraint; the
// authentication expires exactly at authTime+maxAge.
func exceedsMaxAge(maxAge, authTime int64, now time.Time) bool {
	if maxAge == 0 {
		return false
	}
	expiresAt := authTime + maxAge
	return now.Unix() >= expiresAt
}

func acrSatisfied(requested []string, essential bool, achieved string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, acr := range requested {
		if acr == achieved {
			return true
		}
	}
	// The achieved ACR matches none of the requested values. That blocks
	// completion only when the request marked ACR as essential.
	return !essential
}
