// Package handler implements the HTTP surface of the venue API.
//
// Every JSON endpoint answers with the uniform envelope
// {"success": true, "data": ...} or {"success": false, "error": "..."}.
// The admin surfaces sit behind the session middleware; the public surfaces
// (pages, form submissions, newsletter subscribe/unsubscribe, the sponsor
// projection) do not. Handlers validate input at the boundary, call
// repositories and services, and map errors to HTTP statuses in one place.
package handler
