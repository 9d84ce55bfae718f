// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterSignatureRequest: emailHash (pre-hashed) or email (hashed here)

# Response Types

Types for JSON responses:

  - SignatureCountResponse: count, goal, progress
  - RegisterSignatureResponse: count, duplicate
  - StatResponse: stat, links, meta
  - StatListResponse: stats (each with links)
  - ErrorResponse: error, message

The JSON field names of the signature types (count, duplicate, emailHash)
match what the petition form already sends and reads.
*/
package models
