package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestServer_handleRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked results", func(t *testing.T) {
		mock := &mockRecommendService{
			recommendation: &domain.Recommendation{
				Genre:    "fiction",
				Keywords: domain.Keywords{"mystery"},
				Outcome:  domain.OutcomeRanked,
				Results: []domain.ScoredReview{
					{
						Match:      domain.Match{Review: domain.Review{Title: "Gone Girl", Summary: "a gripping mystery", Score: 5, Publisher: "Crown", Categories: "mystery"}, KeywordMatch: true},
						Sentiment:  0.5,
						TotalScore: 2.75,
					},
				},
				Topics: domain.NewTopicSummary([]domain.TopicLabel{{Index: 1, Words: []string{"gripping", "mystery"}}}),
			},
		}
		server, err := NewServer(&Ports{Recommend: mock})
		require.NoError(t, err)

		_, output, err := server.handleRecommend(ctx, nil, RecommendInput{Genre: "fiction", Keywords: "mystery", Limit: 3})

		require.NoError(t, err)
		assert.Equal(t, 3, mock.lastOpts.Limit)
		assert.Equal(t, "ranked", output.Outcome)
		assert.Equal(t, domain.OutcomeRanked.Description(), output.Message)
		require.Equal(t, 1, output.Count)
		assert.Equal(t, 1, output.Results[0].Rank)
		assert.Equal(t, "Gone Girl", output.Results[0].Title)
		assert.Equal(t, "Crown", output.Results[0].Publisher)
		assert.Equal(t, "mystery", output.Results[0].Categories)
		assert.Equal(t, 2.75, output.Results[0].TotalScore)
		assert.Equal(t, "ok", output.Topics.Status)
		assert.Equal(t, "Topic 1: gripping mystery", output.Topics.Text)
		assert.Equal(t, [][]string{{"gripping", "mystery"}}, output.Topics.Topics)
	})

	t.Run("empty outcome is not an error", func(t *testing.T) {
		server, err := NewServer(&Ports{Recommend: &mockRecommendService{}})
		require.NoError(t, err)

		_, output, err := server.handleRecommend(ctx, nil, RecommendInput{Genre: "fiction", Keywords: "zzz"})

		require.NoError(t, err)
		assert.Equal(t, "no_matches", output.Outcome)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Results)
	})

	t.Run("returns error on service failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Recommend: &mockRecommendService{err: errors.New("disk failed")}})
		require.NoError(t, err)

		_, _, err = server.handleRecommend(ctx, nil, RecommendInput{Genre: "fiction", Keywords: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk failed")
	})

	t.Run("rate limited call honours cancellation", func(t *testing.T) {
		mock := &mockRecommendService{}
		server, err := NewServer(&Ports{Recommend: mock})
		require.NoError(t, err)
		server.limiter = rate.NewLimiter(rate.Limit(0.001), 1)

		_, _, err = server.handleRecommend(ctx, nil, RecommendInput{Genre: "fiction", Keywords: "x"})
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err = server.handleRecommend(cancelled, nil, RecommendInput{Genre: "fiction", Keywords: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit")
		assert.Equal(t, 1, mock.calls)
	})
}

func TestServer_handleGenres(t *testing.T) {
	ctx := context.Background()

	t.Run("lists genres", func(t *testing.T) {
		mock := &mockRecommendService{genres: []domain.GenreInfo{
			{Name: "fiction", Available: true, Reviews: 12},
			{Name: "law"},
		}}
		server, err := NewServer(&Ports{Recommend: mock})
		require.NoError(t, err)

		_, output, err := server.handleGenres(ctx, nil, GenresInput{})

		require.NoError(t, err)
		assert.Equal(t, []GenreOutput{
			{Name: "fiction", Available: true, Reviews: 12},
			{Name: "law"},
		}, output.Genres)
	})

	t.Run("wraps errors", func(t *testing.T) {
		server, err := NewServer(&Ports{Recommend: &mockRecommendService{genresErr: errors.New("boom")}})
		require.NoError(t, err)

		_, _, err = server.handleGenres(ctx, nil, GenresInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing genres")
	})
}
