// Package httputil provides shared HTTP response/request utilities for handlers.
//
// Handlers write through these helpers instead of raw http.ResponseWriter
// calls so every endpoint returns the same JSON envelope and error codes.
package httputil
