// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	logger := middleware.NewLogger(cfg.IPHashSalt)
	mux.HandleFunc("GET /signatures", logger.WithLogging(handler))

Logs request start (request_id, method, path, client) and completion
(status, duration_ms). The client field is a salted hash of the address
returned by GetClientIP; raw addresses are never logged.

Each request gets an id, echoed in the X-Request-ID response header and
available to handlers:

	id := middleware.RequestID(r.Context())

# CORS Middleware

Enable cross-origin requests for the petition form:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.RegisterSignatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
