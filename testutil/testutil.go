// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/where-are-the-children/cliparse"
	"github.com/danielhkuo/where-are-the-children/identity"
	"github.com/danielhkuo/where-are-the-children/store"
)

// TestDBURLEnv names the variable holding a PostgreSQL URL for optional tests
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupRedisStore starts an in-process Redis and returns a store backed by it.
// The server is closed when the test finishes.
func SetupRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	m := miniredis.RunT(t)
	s := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	t.Cleanup(func() { s.Close() })

	return s, m
}

// SetupSQLiteStore returns a store on a fresh in-memory SQLite database
func SetupSQLiteStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s, err := store.OpenSQL(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// SetupPostgresStore returns a store on a clean PostgreSQL schema, or skips
// the test when TEST_DATABASE_URL is unset
func SetupPostgresStore(t *testing.T) *store.SQLStore {
	t.Helper()

	url := os.Getenv(TestDBURLEnv)
	if url == "" {
		t.Skip(TestDBURLEnv + " not set")
	}

	conn, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS signer_token CASCADE;
		DROP TABLE IF EXISTS signature_counter CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	conn.Close()

	s, err := store.OpenSQL(context.Background(), "postgres", url)
	if err != nil {
		t.Fatalf("Failed to open postgres store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		StoreURL:     ":memory:",
		StoreType:    cliparse.StoreSQLite,
		StoreTimeout: 500 * time.Millisecond,
		SiteURL:      cliparse.DefaultSiteURL,
		IPHashSalt:   "test-ip-salt",
	}
}

// Token returns the signer token for an email, failing the test on error
func Token(t *testing.T, email string) string {
	t.Helper()

	token, err := identity.HashIdentity(email)
	if err != nil {
		t.Fatalf("Failed to hash identity %q: %v", email, err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := DecodeJSON(w, v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// DecodeJSON decodes the response body without failing the test, for use
// inside goroutines
func DecodeJSON(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
