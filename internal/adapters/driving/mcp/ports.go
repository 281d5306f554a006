package mcp

import (
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Recommend answers recommendation queries and lists genres.
	Recommend driving.RecommendationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	return nil
}
