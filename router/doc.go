// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the petition API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(l, reg, cfg)

# Endpoints

Health:

	GET /health

Petition counter:

	GET  /signatures - Current count and goal
	POST /signatures - Register a signature

Share stats (public, cacheable):

	GET /stats        - All stats with share links
	GET /stats/{id}   - One stat with links and preview metadata
	GET /share/{stat} - Preview page for link unfurling

Every route except /health and / is wrapped in request logging, which
needs cfg.IPHashSalt for hashing client addresses.
*/
package router
