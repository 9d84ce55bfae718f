// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the signature ledger and seeds
// the counter row for counterName at zero.
// Safe to call multiple times - uses IF NOT EXISTS and ON CONFLICT DO NOTHING.
// The SQL is valid for both PostgreSQL and SQLite (3.35+).
func CreateSchema(ctx context.Context, db *sql.DB, counterName string) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO signature_counter (name, count)
		VALUES ($1, 0)
		ON CONFLICT (name) DO NOTHING
	`, counterName)
	if err != nil {
		return fmt.Errorf("failed to seed counter %q: %w", counterName, err)
	}

	return nil
}

const schema = `
-- Signature counters (one row per logical counter key)
CREATE TABLE IF NOT EXISTS signature_counter (
    name TEXT PRIMARY KEY,
    count BIGINT NOT NULL DEFAULT 0 CHECK (count >= 0)
);

-- Signer token set; the primary key is the duplicate check
CREATE TABLE IF NOT EXISTS signer_token (
    token TEXT PRIMARY KEY,
    signed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_signer_token_signed_at ON signer_token(signed_at);
`
