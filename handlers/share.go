// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/where-are-the-children/cliparse"
	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/middleware"
	"github.com/danielhkuo/where-are-the-children/models"
	"github.com/danielhkuo/where-are-the-children/stats"
)

//go:embed templates/share.html
var templateFS embed.FS

var sharePage = template.Must(template.ParseFS(templateFS, "templates/share.html"))

type sharePageData struct {
	Stat  stats.ShareStat
	Meta  stats.PageMeta
	Count string
}

type ShareHandler struct {
	stats  *stats.Registry
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewShareHandler(reg *stats.Registry, l *ledger.Ledger, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{stats: reg, ledger: l, cfg: cfg}
}

// ListStats handles GET /stats
// Returns every stat in display order with its share links.
func (h *ShareHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	all := h.stats.ListAll()

	resp := models.StatListResponse{Stats: make([]models.StatWithLinks, 0, len(all))}
	for _, stat := range all {
		resp.Stats = append(resp.Stats, models.StatWithLinks{
			ShareStat: stat,
			Links:     stats.ShareLinks(stat, h.cfg.SiteURL),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetStat handles GET /stats/{id}
// Unknown ids resolve to the default stat rather than 404.
func (h *ShareHandler) GetStat(w http.ResponseWriter, r *http.Request) {
	stat := h.stats.Resolve(r.PathValue("id"))

	middleware.JSONResponse(w, http.StatusOK, models.StatResponse{
		Stat:  stat,
		Links: stats.ShareLinks(stat, h.cfg.SiteURL),
		Meta:  h.stats.Metadata(stat, h.cfg.SiteURL),
	})
}

// SharePage handles GET /share/{stat}
// Crawlers read the preview tags; browsers follow the refresh to the petition.
func (h *ShareHandler) SharePage(w http.ResponseWriter, r *http.Request) {
	stat := h.stats.Resolve(r.PathValue("stat"))

	data := sharePageData{
		Stat:  stat,
		Meta:  h.stats.Metadata(stat, h.cfg.SiteURL),
		Count: humanize.Comma(h.ledger.GetCount(r.Context())),
	}

	var buf bytes.Buffer
	if err := sharePage.Execute(&buf, data); err != nil {
		slog.Error("failed to render share page",
			"request_id", middleware.RequestID(r.Context()),
			"stat", stat.ID,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
