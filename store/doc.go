// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the petition signature count and signer token set.

# Backends

	s, err := store.Open(ctx, cfg)

Open selects the backend from cfg.StoreType and pings it:

  - redis: RedisStore on go-redis. The count lives in the string key
    petition:signatures and tokens in the set petition:emails.
  - postgres, sqlite: SQLStore on database/sql (lib/pq, modernc.org/sqlite)
    using the tables from package db.

# Atomicity

AddToken is the only write. Each backend makes "is this token new" and
"increment" inseparable:

  - Redis runs SADD and INCR inside one Lua script.
  - SQL runs INSERT ... ON CONFLICT DO NOTHING and the counter UPDATE in one
    transaction; the token primary key arbitrates concurrent inserts.

Neither backend keeps in-process state, so any number of service instances
can share one store.
*/
package store
