// Package middleware holds the HTTP middleware of the API: panic recovery,
// request IDs, access logging, CORS, bearer authentication and rate limits.
// The router installs them with chi's Use, outermost first.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
