// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// TokenLength is the hex length of a signer token (SHA-256)
const TokenLength = sha256.Size * 2

var (
	ErrEmptyIdentity = errors.New("identity is empty")
	ErrInvalidToken  = errors.New("invalid token format")
)

// Normalize trims surrounding whitespace and lowercases a raw identity.
// "A@Example.com " and "a@example.com" normalize to the same string.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// HashIdentity derives the signer token for a raw identity (usually an email).
// The result is the lowercase hex SHA-256 of the normalized identity, so a
// browser hashing the same normalized string produces the same token.
func HashIdentity(raw string) (string, error) {
	normalized := Normalize(raw)
	if normalized == "" {
		return "", ErrEmptyIdentity
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:]), nil
}

// CanonicalToken lowercases a client-supplied token and validates its format
func CanonicalToken(token string) (string, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if err := ValidateToken(token); err != nil {
		return "", err
	}
	return token, nil
}

// ValidateToken checks that token is exactly TokenLength lowercase hex chars
func ValidateToken(token string) error {
	if len(token) != TokenLength {
		return ErrInvalidToken
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return ErrInvalidToken
		}
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for correlating log lines
	return hex.EncodeToString(sum[:8])
}
