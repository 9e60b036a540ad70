// Package rest exposes the knowledge base over HTTP as a small JSON API.
// It is the canonical query surface for non-MCP clients.
package rest

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("rest: query service is required")
