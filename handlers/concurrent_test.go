// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/models"
	"github.com/danielhkuo/where-are-the-children/testutil"
)

// TestConcurrentSameSigner verifies that simultaneous submissions of one
// identity count exactly once
func TestConcurrentSameSigner(t *testing.T) {
	s, _ := testutil.SetupRedisStore(t)
	l := ledger.New(s)
	h := NewSignatureHandler(l)

	token := testutil.Token(t, "eager@example.com")
	numRequests := 20

	var okCount, newCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := postSignature(h, models.RegisterSignatureRequest{EmailHash: token})
			if w.Code != http.StatusOK {
				return
			}
			okCount.Add(1)

			var resp models.RegisterSignatureResponse
			if err := testutil.DecodeJSON(w, &resp); err == nil && !resp.Duplicate {
				newCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(okCount.Load()) != numRequests {
		t.Errorf("Expected %d successful requests, got %d", numRequests, okCount.Load())
	}
	if newCount.Load() != 1 {
		t.Errorf("Expected exactly one first-time signature, got %d", newCount.Load())
	}
	if count := l.GetCount(context.Background()); count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

// TestConcurrentDistinctSigners verifies that no increment is lost and each
// new signer observes a distinct count
func TestConcurrentDistinctSigners(t *testing.T) {
	s, _ := testutil.SetupRedisStore(t)
	l := ledger.New(s)
	h := NewSignatureHandler(l)

	numSigners := 25
	tokens := make([]string, numSigners)
	for i := range tokens {
		tokens[i] = testutil.Token(t, fmt.Sprintf("signer%d@example.com", i))
	}

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup

	for i := 0; i < numSigners; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			w := postSignature(h, models.RegisterSignatureRequest{EmailHash: tokens[idx]})
			var resp models.RegisterSignatureResponse
			if w.Code != http.StatusOK || testutil.DecodeJSON(w, &resp) != nil {
				return
			}

			mu.Lock()
			seen[resp.Count] = true
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	if len(seen) != numSigners {
		t.Errorf("Expected %d distinct counts, got %d", numSigners, len(seen))
	}
	for n := int64(1); n <= int64(numSigners); n++ {
		if !seen[n] {
			t.Errorf("No signer observed count %d", n)
		}
	}

	// Reads stay consistent with writes
	w := httptest.NewRecorder()
	h.GetCount(w, testutil.MakeRequest("GET", "/signatures", nil, nil))
	var resp models.SignatureCountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != int64(numSigners) {
		t.Errorf("Expected count %d, got %d", numSigners, resp.Count)
	}
}
