// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Where Are The Children? petition
API server.

The server keeps the public signature count for the petition, records each
signer at most once, and serves the share stats and link previews used to
spread it.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first if present:

	STORE_URL=redis://... STORE_TOKEN=... IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -s data/petition.db -t sqlite --ip-salt "..."

# Configuration

Required settings:

  - STORE_URL (-s): counter store location (UPSTASH_REDIS_REST_URL also read)
  - STORE_TOKEN (--store-token): Redis password/token, unless in the URL
  - IP_HASH_SALT (--ip-salt): secret for hashing client addresses in logs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-t): redis, postgres or sqlite (inferred from STORE_URL)
  - STORE_TIMEOUT (--store-timeout): per-call store deadline (default: 3s)
  - SITE_URL (--site-url): public origin used in share links

# Architecture

  - handlers: HTTP request handlers (signatures, share stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - ledger: Signature registration and counting
  - store: Redis, PostgreSQL and SQLite counter stores
  - stats: Share stat registry and share links
  - identity: Signer token hashing and validation
  - db: SQL schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
