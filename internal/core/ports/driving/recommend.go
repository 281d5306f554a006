package driving

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// RecommendationService provides genre-scoped book recommendations.
type RecommendationService interface {
	// Recommend ranks the reviews of a genre that match the keyword string.
	// Not-found genres, blank keywords and empty match sets are reported via
	// Recommendation.Outcome, not as errors.
	Recommend(
		ctx context.Context, genre, keywords string, opts domain.RecommendOptions,
	) (*domain.Recommendation, error)

	// Genres lists the genre vocabulary with partition availability.
	Genres(ctx context.Context) ([]domain.GenreInfo, error)
}
