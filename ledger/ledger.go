// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/where-are-the-children/identity"
	"github.com/danielhkuo/where-are-the-children/store"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

const DefaultTimeout = 3 * time.Second

// Result is the outcome of a registration attempt
type Result struct {
	Count     int64
	Duplicate bool
}

// Ledger counts signatures with at-most-once semantics per signer token.
// It holds no state of its own; every call goes to the store.
type Ledger struct {
	store   store.Store
	timeout time.Duration
}

type Option func(*Ledger)

// WithTimeout bounds every store call
func WithTimeout(d time.Duration) Option {
	return func(l *Ledger) {
		if d > 0 {
			l.timeout = d
		}
	}
}

func New(s store.Store, opts ...Option) *Ledger {
	l := &Ledger{store: s, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GetCount returns the current signature count. A store failure is logged
// and reported as 0 so the public counter keeps rendering.
func (l *Ledger) GetCount(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, err := l.store.Count(ctx)
	if err != nil {
		slog.Warn("signature count unavailable, reporting 0", "error", err)
		return 0
	}
	if count < 0 {
		return 0
	}
	return count
}

// RegisterSignature records token if it is new. Re-registering a known token
// is not an error: it returns the current count with Duplicate set.
func (l *Ledger) RegisterSignature(ctx context.Context, token string) (Result, error) {
	token, err := identity.CanonicalToken(token)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, added, err := l.store.AddToken(ctx, token)
	if err != nil {
		slog.Error("failed to register signature", "error", err)
		return Result{}, ErrStoreUnavailable
	}

	return Result{Count: count, Duplicate: !added}, nil
}

// Sign hashes a raw identity (email) and registers the resulting token.
// The raw identity goes no further than this call.
func (l *Ledger) Sign(ctx context.Context, rawIdentity string) (Result, error) {
	token, err := identity.HashIdentity(rawIdentity)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return l.RegisterSignature(ctx, token)
}

// Audit compares the stored count with the size of the token set
type Audit struct {
	Count   int64
	Signers int64
}

func (a Audit) Consistent() bool {
	return a.Count == a.Signers
}

func (l *Ledger) Audit(ctx context.Context) (Audit, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, err := l.store.Count(ctx)
	if err != nil {
		slog.Error("audit: failed to read count", "error", err)
		return Audit{}, ErrStoreUnavailable
	}
	signers, err := l.store.Signers(ctx)
	if err != nil {
		slog.Error("audit: failed to read token set size", "error", err)
		return Audit{}, ErrStoreUnavailable
	}

	return Audit{Count: count, Signers: signers}, nil
}
