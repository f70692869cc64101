// Package http exposes the console API over echo.
//
// Routes live under /api and, except for POST /api/session, require an active
// admin session. Status changes and driver assignments answer 202 with the
// optimistic order; add ?wait=true to block until the backend settles the
// request. Errors are returned as {"code": ..., "message": ...}.
package http
