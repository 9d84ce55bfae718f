// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/where-are-the-children/cliparse"
	"github.com/danielhkuo/where-are-the-children/handlers"
	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/middleware"
	"github.com/danielhkuo/where-are-the-children/stats"
)

func NewRouter(l *ledger.Ledger, reg *stats.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	logger := middleware.NewLogger(cfg.IPHashSalt)

	// Initialize handlers
	signatureHandler := handlers.NewSignatureHandler(l)
	shareHandler := handlers.NewShareHandler(reg, l, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Petition counter
	mux.HandleFunc("GET /signatures", logger.WithLogging(signatureHandler.GetCount))
	mux.HandleFunc("POST /signatures", logger.WithLogging(signatureHandler.Register))

	// Share stats
	mux.HandleFunc("GET /stats", logger.WithLogging(shareHandler.ListStats))
	mux.HandleFunc("GET /stats/{id}", logger.WithLogging(shareHandler.GetStat))
	mux.HandleFunc("GET /share/{stat}", logger.WithLogging(shareHandler.SharePage))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("where-are-the-children API v1"))
	})

	return mux
}
