// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger counts petition signatures, at most once per signer.

	l := ledger.New(s, ledger.WithTimeout(cfg.StoreTimeout))

	count := l.GetCount(ctx)                  // never fails; 0 on store trouble
	res, err := l.RegisterSignature(ctx, tok) // pre-hashed token
	res, err := l.Sign(ctx, email)            // hashed here, then registered

# Errors

Only two errors cross this package boundary:

  - ErrInvalidInput: the token is not a 64-char hex digest, or the identity
    is empty. Returned before the store is touched.
  - ErrStoreUnavailable: the store failed or timed out. The signature may
    not have been recorded and the caller should not report success.

A duplicate signer is not an error; Result.Duplicate is set and Result.Count
is the unchanged total.

# Goals

ProgressFor maps a count to the current public goal (10,000 then 50,000)
and the percentage reached, capped at 100.
*/
package ledger
