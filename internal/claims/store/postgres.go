package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PostgresStore persists user claims in PostgreSQL. Values are stored as
// JSONB so structured claims such as "address" round-trip intact.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed claim store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ClaimValue(ctx context.Context, subject, claim, tag string) (any, error) {
	var raw []byte
	query := `
		SELECT value FROM user_claims
		WHERE subject = $1 AND claim = $2 AND language_tag = $3
	`
	err := s.db.QueryRowContext(ctx, query, subject, claim, tag).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find claim: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode claim value: %w", err)
	}
	return value, nil
}

func (s *PostgresStore) SaveClaim(ctx context.Context, subject, claim, tag string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode claim value: %w", err)
	}
	query := `
		INSERT INTO user_claims (subject, claim, language_tag, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subject, claim, language_tag) DO UPDATE SET
			value = EXCLUDED.value
	`
	if _, err := s.db.ExecContext(ctx, query, subject, claim, tag, raw); err != nil {
		return fmt.Errorf("save claim: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteSubject(ctx context.Context, subject string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM user_claims WHERE subject = $1`, subject); err != nil {
		return fmt.Errorf("delete subject claims: %w", err)
	}
	return nil
}
