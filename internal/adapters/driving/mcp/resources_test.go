package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractGenre(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"single word", "folio://genres/fiction", "fiction"},
		{"encoded space", "folio://genres/young%20adult%20fiction", "young adult fiction"},
		{"plus space", "folio://genres/true+crime", "true crime"},
		{"upper case", "folio://genres/Poetry", "poetry"},
		{"wrong scheme", "file://genres/fiction", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractGenre(tt.uri))
		})
	}
}

func TestServer_handleGenresResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns genres as JSON", func(t *testing.T) {
		mock := &mockRecommendService{genres: []domain.GenreInfo{
			{Name: "fiction", Available: true, Reviews: 3},
		}}
		server, err := NewServer(&Ports{Recommend: mock})
		require.NoError(t, err)

		result, err := server.handleGenresResource(ctx, makeReadResourceRequest("folio://genres"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"name": "fiction"`)
		assert.Contains(t, result.Contents[0].Text, `"available": true`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Recommend: &mockRecommendService{genresErr: errors.New("db down")}})
		require.NoError(t, err)

		_, err = server.handleGenresResource(ctx, makeReadResourceRequest("folio://genres"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing genres")
	})
}

func TestServer_handleGenreResource(t *testing.T) {
	ctx := context.Background()
	mock := &mockRecommendService{genres: []domain.GenreInfo{
		{Name: "true crime", Available: true, Reviews: 7},
	}}
	server, err := NewServer(&Ports{Recommend: mock})
	require.NoError(t, err)

	t.Run("known genre", func(t *testing.T) {
		result, err := server.handleGenreResource(ctx, makeReadResourceRequest("folio://genres/true%20crime"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"reviews": 7`)
	})

	t.Run("unknown genre", func(t *testing.T) {
		_, err := server.handleGenreResource(ctx, makeReadResourceRequest("folio://genres/cyberpunk"))
		assert.Error(t, err)
	})

	t.Run("vocabulary genre missing from listing", func(t *testing.T) {
		_, err := server.handleGenreResource(ctx, makeReadResourceRequest("folio://genres/law"))
		assert.Error(t, err)
	})
}
