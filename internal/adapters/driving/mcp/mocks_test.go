package mcp

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// mockRecommendService is a mock implementation of driving.RecommendationService.
type mockRecommendService struct {
	recommendation *domain.Recommendation
	genres         []domain.GenreInfo
	err            error
	genresErr      error

	calls    int
	lastOpts domain.RecommendOptions
}

func (m *mockRecommendService) Recommend(
	_ context.Context,
	genre, keywords string,
	opts domain.RecommendOptions,
) (*domain.Recommendation, error) {
	m.calls++
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.recommendation != nil {
		return m.recommendation, nil
	}
	return &domain.Recommendation{
		Genre:    genre,
		Keywords: domain.ParseKeywords(keywords),
		Outcome:  domain.OutcomeNoMatches,
		Results:  []domain.ScoredReview{},
	}, nil
}

func (m *mockRecommendService) Genres(_ context.Context) ([]domain.GenreInfo, error) {
	return m.genres, m.genresErr
}
