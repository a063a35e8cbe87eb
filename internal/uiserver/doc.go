// Package uiserver implements the operator-facing UI surface: the HTTP
// API and websocket push channel spec.md §6 describes as "the operator
// UI transport" and leaves out of scope beyond its verb/message list, and
// the UI Background Task of spec §4.7 (the push half of which lives here;
// the dirty-flag sweep itself runs inside internal/coordinator's actor
// loop and calls into this package's Publisher implementation).
//
// Grounded on SPEC_FULL.md §6 "Domain stack wiring": gin-gonic/gin serves
// GET /api/status, POST /api/command and mounts the operator SPA's static
// assets (SUPPLEMENTED FEATURES #1); gorilla/websocket upgrades GET /ws
// into the push channel. Neither library appears in the teacher's
// (muster) go.mod import graph in any HTTP-server capacity — muster's own
// HTTP surface is entirely MCP-protocol — so both are borrowed from the
// cklxx-elephant.ai example repo's old_internal/webui package, which is
// the only pack repo that pairs gin with gorilla/websocket for exactly
// this shape of server-push UI.
package uiserver
