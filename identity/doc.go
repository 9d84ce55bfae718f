// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity derives signer tokens and other one-way identifiers.

# Signer Tokens

A signer token is the lowercase hex SHA-256 of a normalized identity:

	token, err := identity.HashIdentity("A@Example.com ")
	// same token as identity.HashIdentity("a@example.com")

Normalization trims surrounding whitespace and lowercases. The raw identity
is never stored; only the 64-character token reaches the counter store.
Empty identities return ErrEmptyIdentity.

# Client-Supplied Tokens

Browsers may hash the email themselves and submit the digest. Such tokens
are never trusted blindly:

	token, err := identity.CanonicalToken(req.EmailHash)

CanonicalToken lowercases and checks the exact hex format, returning
ErrInvalidToken for anything else.

# IP Hashing

For request logs that must not contain raw client addresses:

	hash := identity.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package identity
