// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/where-are-the-children/cliparse"
)

// Logical keys shared by every backend
const (
	CountKey    = "petition:signatures"
	TokenSetKey = "petition:emails" // set of hashed emails
)

// Store owns the signature count and the signer token set.
// AddToken must add the token and increment the count as one atomic unit
// from the backend's point of view, so concurrent calls for the same token
// increment at most once.
type Store interface {
	// Count returns the current signature count (0 when nothing is stored yet)
	Count(ctx context.Context) (int64, error)
	// AddToken registers token. added is false when token was already present,
	// in which case count is the unchanged current total.
	AddToken(ctx context.Context, token string) (count int64, added bool, err error)
	// Signers returns the size of the token set
	Signers(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the backend selected by cfg and verifies the connection
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.StoreType {
	case cliparse.StoreRedis:
		s, err = OpenRedis(cfg.StoreURL, cfg.StoreToken)
	case cliparse.StorePostgres:
		s, err = OpenSQL(ctx, "postgres", cfg.StoreURL)
	case cliparse.StoreSQLite:
		s, err = OpenSQL(ctx, "sqlite", cfg.StoreURL)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := s.Ping(pingCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("%s store ping failed: %w", cfg.StoreType, err)
	}

	return s, nil
}

// OpenSQL opens a database/sql backed store and creates its schema.
// driver is "postgres" (lib/pq) or "sqlite" (modernc.org/sqlite).
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s open failed: %w", driver, err)
	}

	if driver == "sqlite" {
		// SQLite allows a single writer; one connection serializes the
		// add-and-increment transactions instead of failing with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
		if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("sqlite pragma failed: %w", err)
		}
	}

	s, err := NewSQLStore(ctx, conn, CountKey)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}
