// Package claims resolves requested claim names into concrete values using
// BCP47 locale negotiation (OpenID Connect Core 1.0, 5.2).
package claims

import (
	"context"
	"strings"

	"gatekit/internal/spi"
)

// Request is a single requested claim: a name plus an optional language tag,
// parsed from identifiers such as "family_name#ja".
type Request struct {
	Name string
	Tag  string
}

// ParseRequest splits a raw claim identifier on the first '#'. Identifiers
// with an empty name part are discarded (ok=false); a trailing '#' with no
// tag normalizes to an untagged request.
func ParseRequest(raw string) (Request, bool) {
	name, tag, _ := strings.Cut(raw, "#")
	if name == "" {
		return Request{}, false
	}
	return Request{Name: name, Tag: tag}, true
}

// Key is the identifier under which a resolved value is stored: the tag is
// kept unless it was a trivial trailing '#'.
func (r Request) Key() string {
	if r.Tag == "" {
		return r.Name
	}
	return r.Name + "#" + r.Tag
}

// NormalizeLocales builds an ordered, duplicate-free list of lower-cased
// locale tags. BCP47 tags are case insensitive, so de-duplication compares
// lower-cased values while first-seen order is preserved. Empty entries are
// dropped; when nothing survives the result is nil, meaning "no preference".
func NormalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	normalized := make([]string, 0, len(locales))

	for _, locale := range locales {
		lowered := strings.ToLower(locale)
		if lowered == "" {
			continue
		}
		if _, ok := seen[lowered]; ok {
			continue
		}
		seen[lowered] = struct{}{}
		normalized = append(normalized, lowered)
	}

	if len(normalized) == 0 {
		return nil
	}
	return normalized
}

// Collect resolves the requested claim names for a subject. Resolution per
// claim:
//
//  1. An explicit language tag is looked up directly, with no fallback.
//  2. Without locale preferences, the untagged value is looked up.
//  3. Otherwise each preferred locale is tried in order, falling back to the
//     untagged value when none matches.
//
// Unresolvable claims are omitted. The result is nil, never an empty map,
// when no claim resolves or no claims were requested.
func Collect(ctx context.Context, subject string, claimNames, claimLocales []string, provider spi.ClaimProvider) map[string]any {
	if len(claimNames) == 0 {
		return nil
	}

	locales := NormalizeLocales(claimLocales)

	collected := make(map[string]any, len(claimNames))
	for _, raw := range claimNames {
		req, ok := ParseRequest(raw)
		if !ok {
			continue
		}

		value := resolve(ctx, subject, req, locales, provider)
		if value == nil {
			continue
		}
		collected[req.Key()] = value
	}

	if len(collected) == 0 {
		return nil
	}
	return collected
}

func resolve(ctx context.Context, subject string, req Request, locales []string, provider spi.ClaimProvider) any {
	// An explicit tag pins the lookup; no fallback.
	if req.Tag != "" {
		return provider.UserClaimValue(ctx, subject, req.Name, req.Tag)
	}

	if locales == nil {
		return provider.UserClaimValue(ctx, subject, req.Name, "")
	}

	for _, locale := range locales {
		if value := provider.UserClaimValue(ctx, subject, req.Name, locale); value != nil {
			return value
		}
	}

	// Last resort: the untagged value.
	return provider.UserClaimValue(ctx, subject, req.Name, "")
}
