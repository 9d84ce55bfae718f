// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the petition API.

# Handler Types

Each handler is a struct built by a constructor:

  - SignatureHandler: the public counter and signature submission
  - ShareHandler: share stats, share links and crawler preview pages

	sigHandler := handlers.NewSignatureHandler(l)
	shareHandler := handlers.NewShareHandler(reg, l, cfg)

# Signatures

	GET  /signatures → GetCount (count, goal, progress)
	POST /signatures → Register (count, duplicate)

Register accepts {"emailHash": "<64 hex chars>"} from the browser, or
{"email": "..."} which is normalized and hashed before it reaches the store.
Signing a second time returns 200 with duplicate set and the count
unchanged.

GetCount never fails: when the store cannot be reached it reports 0 so the
counter on the page keeps rendering. Register reports store failures as 500
without details.

# Sharing

	GET /stats        → ListStats (every stat with share links)
	GET /stats/{id}   → GetStat (stat, links, preview metadata)
	GET /share/{stat} → SharePage (HTML)

Unknown stat ids resolve to the default stat. The share page carries Open
Graph and Twitter card tags for link unfurling, the current signature
count, and a meta refresh that sends browsers to the petition form.
*/
package handlers
