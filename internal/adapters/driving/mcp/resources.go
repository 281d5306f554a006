package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Folio resources.
	uriScheme = "folio://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "genres",
		Name:        "genres",
		Description: "The genre vocabulary with review data availability",
		MIMEType:    "application/json",
	}, s.handleGenresResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "genres/{genre}",
		Name:        "genre",
		Description: "Availability of review data for one genre",
		MIMEType:    "application/json",
	}, s.handleGenreResource)
}

// handleGenresResource returns every genre with its availability.
func (s *Server) handleGenresResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	genres, err := s.listGenres(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, genres)
}

// handleGenreResource returns the availability of one genre.
func (s *Server) handleGenreResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractGenre(req.Params.URI)
	if !domain.IsKnownGenre(name) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	genres, err := s.listGenres(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range genres {
		if g.Name == name {
			return jsonResource(req.Params.URI, g)
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractGenre extracts the genre label from a URI like folio://genres/{genre}.
// Spaces may be sent as "%20" or "+".
func extractGenre(uri string) string {
	const prefix = uriScheme + "genres/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	name = strings.NewReplacer("%20", " ", "+", " ").Replace(name)
	return strings.ToLower(strings.TrimSpace(name))
}
