package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Genre    string `json:"genre" jsonschema:"genre label from the folio://genres list, e.g. fiction"`
	Keywords string `json:"keywords" jsonschema:"space-separated keywords to look for in review summaries"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results (1-10, default 10)"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	Genre    string                 `json:"genre"`
	Keywords []string               `json:"keywords"`
	Outcome  string                 `json:"outcome"`
	Message  string                 `json:"message"`
	Results  []RecommendationOutput `json:"results"`
	Count    int                    `json:"count"`
	Topics   TopicsOutput           `json:"topics"`
}

// RecommendationOutput represents a single ranked review.
type RecommendationOutput struct {
	Rank       int     `json:"rank"`
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Publisher  string  `json:"publisher,omitempty"`
	Categories string  `json:"categories"`
	Score      float64 `json:"score"`
	Sentiment  float64 `json:"sentiment"`
	TotalScore float64 `json:"total_score"`
}

// TopicsOutput is the topic summary of a recommendation.
type TopicsOutput struct {
	Status string     `json:"status"`
	Text   string     `json:"text"`
	Topics [][]string `json:"topics,omitempty"`
}

// GenresInput is the (empty) input schema for the genres tool.
type GenresInput struct{}

// GenresOutput is the output schema for the genres tool.
type GenresOutput struct {
	Genres []GenreOutput `json:"genres"`
}

// GenreOutput describes one genre.
type GenreOutput struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reviews   int    `json:"reviews"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend books in a genre whose reviews mention the given keywords, ranked by rating and review sentiment",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "genres",
		Description: "List the recognised genres and whether review data is available for each",
	}, s.handleGenres)
}

// handleRecommend handles the recommend tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, RecommendOutput{}, fmt.Errorf("rate limit: %w", err)
	}

	rec, err := s.ports.Recommend.Recommend(ctx, input.Genre, input.Keywords, domain.RecommendOptions{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	return nil, toRecommendOutput(rec), nil
}

// handleGenres handles the genres tool invocation.
func (s *Server) handleGenres(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GenresInput,
) (*mcp.CallToolResult, GenresOutput, error) {
	genres, err := s.listGenres(ctx)
	if err != nil {
		return nil, GenresOutput{}, err
	}
	return nil, GenresOutput{Genres: genres}, nil
}

func (s *Server) listGenres(ctx context.Context) ([]GenreOutput, error) {
	infos, err := s.ports.Recommend.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing genres: %w", err)
	}

	out := make([]GenreOutput, len(infos))
	for i, g := range infos {
		out[i] = GenreOutput{Name: g.Name, Available: g.Available, Reviews: g.Reviews}
	}
	return out, nil
}

func toRecommendOutput(rec *domain.Recommendation) RecommendOutput {
	out := RecommendOutput{
		Genre:    rec.Genre,
		Keywords: append([]string{}, rec.Keywords...),
		Outcome:  string(rec.Outcome),
		Message:  rec.Outcome.Description(),
		Results:  make([]RecommendationOutput, len(rec.Results)),
		Count:    len(rec.Results),
		Topics: TopicsOutput{
			Status: string(rec.Topics.Status),
			Text:   rec.Topics.Text,
		},
	}

	for i := range rec.Results {
		r := rec.Results[i]
		out.Results[i] = RecommendationOutput{
			Rank:       i + 1,
			Title:      r.Title,
			Summary:    r.Summary,
			Publisher:  r.Publisher,
			Categories: r.Categories,
			Score:      r.Score,
			Sentiment:  r.Sentiment,
			TotalScore: r.TotalScore,
		}
	}
	for _, label := range rec.Topics.Labels {
		out.Topics.Topics = append(out.Topics.Topics, label.Words)
	}

	return out
}
