// Package handler provides the HTTP endpoints of the treasury API.
//
// Each handler struct encapsulates the repositories or services needed to
// serve one resource family and is registered on the mux by cmd/server.
//
// # Response Format
//
// Successful responses serialize the record or array directly. Failures
// use a single-field envelope written by WriteError:
//
//	{"error": "Society not found"}
//
// Absent records map to 404, rejected input to 400, duplicate usernames
// to 409, and IPFS collaborator failures to 503 (unconfigured) or 502
// (upload failure).
package handler
