// Package http exposes the snapshot sync endpoints and the domain writes
// that feed the journal over a chi router.
//
// Every route except /api/health and /metrics requires a bearer JWT whose
// subject is the caller's user id.
package http
