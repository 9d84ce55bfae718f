// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/middleware"
	"github.com/danielhkuo/where-are-the-children/models"
)

type SignatureHandler struct {
	ledger *ledger.Ledger
}

func NewSignatureHandler(l *ledger.Ledger) *SignatureHandler {
	return &SignatureHandler{ledger: l}
}

// GetCount handles GET /signatures
// Always 200: an unreachable store reads as count 0.
func (h *SignatureHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	count := h.ledger.GetCount(r.Context())
	progress := ledger.ProgressFor(count)

	w.Header().Set("Cache-Control", "no-store")
	middleware.JSONResponse(w, http.StatusOK, models.SignatureCountResponse{
		Count:    count,
		Goal:     progress.Goal,
		Progress: progress.Percent,
	})
}

// Register handles POST /signatures
// Accepts a pre-hashed emailHash, or a raw email which is hashed here and
// then dropped. Signing twice is not an error.
func (h *SignatureHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterSignatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var (
		result ledger.Result
		err    error
	)
	switch {
	case req.EmailHash != "":
		result, err = h.ledger.RegisterSignature(r.Context(), req.EmailHash)
	case strings.TrimSpace(req.Email) != "":
		result, err = h.ledger.Sign(r.Context(), req.Email)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing emailHash")
		return
	}

	if errors.Is(err, ledger.ErrInvalidInput) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "emailHash must be a hex SHA-256 digest")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process signature")
		return
	}

	slog.Info("signature processed",
		"request_id", middleware.RequestID(r.Context()),
		"duplicate", result.Duplicate,
		"count", result.Count,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RegisterSignatureResponse{
		Count:     result.Count,
		Duplicate: result.Duplicate,
	})
}
