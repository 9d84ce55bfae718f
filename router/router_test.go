// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/middleware"
	"github.com/danielhkuo/where-are-the-children/models"
	"github.com/danielhkuo/where-are-the-children/stats"
	"github.com/danielhkuo/where-are-the-children/testutil"
)

func setupRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	reg, err := stats.Embedded()
	if err != nil {
		t.Fatalf("Failed to load stats: %v", err)
	}
	l := ledger.New(testutil.SetupSQLiteStore(t))

	return NewRouter(l, reg, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "where-are-the-children API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/signatures"},
		{"POST", "/signatures"},
		{"GET", "/stats"},
		{"GET", "/stats/69-percent"},
		{"GET", "/share/69-percent"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400 is a valid answer for an empty POST
			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/signatures"},
		{"PUT", "/signatures"},
		{"POST", "/stats/default"},
		{"POST", "/share/default"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := setupRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/no/such/route", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

// TestSignatureFlow drives the public API the way the petition page does
func TestSignatureFlow(t *testing.T) {
	handler := middleware.CORS(setupRouter(t))
	token := testutil.Token(t, "flow@example.com")

	// Counter starts at zero
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("GET", "/signatures", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var before models.SignatureCountResponse
	testutil.AssertJSON(t, w, &before)
	if before.Count != 0 {
		t.Fatalf("Expected initial count 0, got %d", before.Count)
	}

	// Sign, then sign again
	for i, wantDuplicate := range []bool{false, true} {
		req := testutil.MakeRequest("POST", "/signatures",
			models.RegisterSignatureRequest{EmailHash: token},
			map[string]string{"Origin": "https://wherearethechildren.net"})
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if _, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader)); err != nil {
			t.Errorf("Attempt %d: missing request id header", i+1)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://wherearethechildren.net" {
			t.Errorf("Attempt %d: missing CORS header", i+1)
		}

		var resp models.RegisterSignatureResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Count != 1 || resp.Duplicate != wantDuplicate {
			t.Errorf("Attempt %d: got %+v", i+1, resp)
		}
	}

	// Share page reflects the new count
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/share/blackbox", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Signatures so far: 1<") {
		t.Error("Expected share page to show count 1")
	}
	if !strings.Contains(w.Body.String(), "/og/og-blackbox.jpg") {
		t.Error("Expected blackbox preview image")
	}
}
