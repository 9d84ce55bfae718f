// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/where-are-the-children/db"
)

// SQLStore keeps the count in signature_counter and the token set in
// signer_token. Works with PostgreSQL and SQLite.
type SQLStore struct {
	db      *sql.DB
	counter string
}

// NewSQLStore creates the schema if needed and returns a store for counter
func NewSQLStore(ctx context.Context, conn *sql.DB, counter string) (*SQLStore, error) {
	if err := db.CreateSchema(ctx, conn, counter); err != nil {
		return nil, err
	}
	return &SQLStore{db: conn, counter: counter}, nil
}

func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT count FROM signature_counter WHERE name = $1
	`, s.counter).Scan(&count)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read count: %w", err)
	}
	return count, nil
}

// AddToken inserts the token and bumps the counter in one transaction.
// The primary key on signer_token decides which of two concurrent inserts
// of the same token wins; the loser affects zero rows and only reads.
func (s *SQLStore) AddToken(ctx context.Context, token string) (int64, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO signer_token (token, signed_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`, token, time.Now().UTC())
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert token: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	var count int64
	if inserted == 0 {
		err = tx.QueryRowContext(ctx, `
			SELECT count FROM signature_counter WHERE name = $1
		`, s.counter).Scan(&count)
	} else {
		err = tx.QueryRowContext(ctx, `
			UPDATE signature_counter SET count = count + 1
			WHERE name = $1
			RETURNING count
		`, s.counter).Scan(&count)
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to update count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return count, inserted > 0, nil
}

func (s *SQLStore) Signers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM signer_token`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}
	return n, nil
}

// DB exposes the underlying connection pool
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
