// Package mcp provides an MCP (Model Context Protocol) server adapter for Folio.
// It lets AI assistants request genre-scoped book recommendations.
package mcp

import "errors"

// ErrMissingRecommendService is returned when the recommendation service is not provided.
var ErrMissingRecommendService = errors.New("mcp: recommendation service is required")
