// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL counter stores.

# Schema Creation

CreateSchema initializes all required tables and seeds the counter row:

	if err := db.CreateSchema(ctx, conn, "petition:signatures"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes and
ON CONFLICT DO NOTHING for the seed row. The same statements run on
PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - signature_counter: named integer counters, never negative
  - signer_token: one row per signer token

The count in signature_counter always equals the number of rows in
signer_token; both are only written together inside one transaction by the
SQL store.

# Indexes

  - signer_token.token (primary key, enforces set semantics)
  - signer_token.signed_at
*/
package db
