// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/models"
	"github.com/danielhkuo/where-are-the-children/stats"
	"github.com/danielhkuo/where-are-the-children/store"
	"github.com/danielhkuo/where-are-the-children/testutil"
)

func setupShareHandler(t *testing.T, s store.Store) *ShareHandler {
	t.Helper()
	reg, err := stats.Embedded()
	if err != nil {
		t.Fatalf("Failed to load stats: %v", err)
	}
	return NewShareHandler(reg, ledger.New(s), testutil.GetTestConfig())
}

func TestListStats(t *testing.T) {
	h := setupShareHandler(t, fixedStore{})
	cfg := testutil.GetTestConfig()

	w := httptest.NewRecorder()
	h.ListStats(w, testutil.MakeRequest("GET", "/stats", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.StatListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Stats) != 6 {
		t.Fatalf("Expected 6 stats, got %d", len(resp.Stats))
	}
	if resp.Stats[0].ID != "default" {
		t.Errorf("Expected default stat first, got %s", resp.Stats[0].ID)
	}
	for _, s := range resp.Stats {
		if s.Links.URL != cfg.SiteURL+"/share/"+s.ID {
			t.Errorf("Stat %s has share URL %s", s.ID, s.Links.URL)
		}
		if s.Number == "" || s.ShareText == "" {
			t.Errorf("Stat %s missing fields: %+v", s.ID, s.ShareStat)
		}
	}
}

func TestGetStat(t *testing.T) {
	h := setupShareHandler(t, fixedStore{})

	testCases := []struct {
		name   string
		id     string
		wantID string
	}{
		{"known id", "trafficking", "trafficking"},
		{"default id", "default", "default"},
		{"unknown id falls back", "no-such-stat", "default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/stats/"+tc.id, nil, nil)
			req.SetPathValue("id", tc.id)
			w := httptest.NewRecorder()

			h.GetStat(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.StatResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Stat.ID != tc.wantID {
				t.Errorf("Expected stat %s, got %s", tc.wantID, resp.Stat.ID)
			}
			if resp.Meta.RedirectTo != stats.PetitionPath {
				t.Errorf("Expected redirect to %s, got %s", stats.PetitionPath, resp.Meta.RedirectTo)
			}
			if resp.Meta.Title != resp.Stat.OGTitle {
				t.Errorf("Meta title %q does not match stat", resp.Meta.Title)
			}
			if !strings.HasSuffix(resp.Links.URL, "/share/"+tc.wantID) {
				t.Errorf("Unexpected share URL %s", resp.Links.URL)
			}
		})
	}
}

func TestSharePage(t *testing.T) {
	h := setupShareHandler(t, fixedStore{count: 12345})
	cfg := testutil.GetTestConfig()

	req := testutil.MakeRequest("GET", "/share/trafficking", nil, nil)
	req.SetPathValue("stat", "trafficking")
	w := httptest.NewRecorder()

	h.SharePage(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %s", ct)
	}

	body := w.Body.String()
	wants := []string{
		`<meta property="og:title" content="1 in 7 — Where Are The Children?">`,
		`<meta property="og:url" content="` + cfg.SiteURL + `/share/trafficking">`,
		`<meta property="og:image" content="` + cfg.SiteURL + `/og/og-trafficking.jpg">`,
		`<meta property="og:image:width" content="1200">`,
		`<meta property="og:image:height" content="630">`,
		`<meta property="og:site_name" content="Where Are The Children?">`,
		`<meta property="og:locale" content="en_US">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta http-equiv="refresh" content="0; url=/#sign">`,
		`<a href="/#sign">`,
		`Signatures so far: 12,345<`,
	}
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("Share page missing %q", want)
		}
	}
}

func TestSharePage_UnknownStat(t *testing.T) {
	h := setupShareHandler(t, fixedStore{})

	req := testutil.MakeRequest("GET", "/share/bogus", nil, nil)
	req.SetPathValue("stat", "bogus")
	w := httptest.NewRecorder()

	h.SharePage(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `<meta property="og:image" content="`+testutil.GetTestConfig().SiteURL+`/og/og-default.jpg">`) {
		t.Error("Expected default stat preview for unknown id")
	}
}

func TestSharePage_StoreDown(t *testing.T) {
	h := setupShareHandler(t, downStore{})

	req := testutil.MakeRequest("GET", "/share/default", nil, nil)
	req.SetPathValue("stat", "default")
	w := httptest.NewRecorder()

	h.SharePage(w, req)

	// Previews must keep rendering
	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Signatures so far: 0<") {
		t.Error("Expected count 0 while store is down")
	}
}
