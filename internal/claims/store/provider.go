package store

import (
	"context"
	"errors"
	"log/slog"
)

// Provider adapts a Store to the claim-resolution capability the endpoint
// handlers consume. Lookup failures other than a plain miss are logged and
// treated as "value not available".
type Provider struct {
	store  Store
	logger *slog.Logger
}

func NewProvider(store Store, logger *slog.Logger) *Provider {
	return &Provider{store: store, logger: logger}
}

func (p *Provider) UserClaimValue(ctx context.Context, subject, claimName, languageTag string) any {
	value, err := p.store.ClaimValue(ctx, subject, claimName, languageTag)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.logger.ErrorContext(ctx, "claim lookup failed",
				"subject", subject,
				"claim", claimName,
				"error", err)
		}
		return nil
	}
	return value
}
