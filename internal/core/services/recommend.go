package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure RecommendationService implements the interface.
var _ driving.RecommendationService = (*RecommendationService)(nil)

// RecommendationService runs the match, score, rank and summarise pipeline
// over one genre partition per call. It keeps no state between calls.
type RecommendationService struct {
	partitions driven.PartitionStore
	matcher    driven.KeywordMatcher
	scorer     driven.SentimentScorer
	topics     driven.TopicExtractor
	limit      int
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	partitions driven.PartitionStore,
	matcher driven.KeywordMatcher,
	scorer driven.SentimentScorer,
	topics driven.TopicExtractor,
) *RecommendationService {
	return &RecommendationService{
		partitions: partitions,
		matcher:    matcher,
		scorer:     scorer,
		topics:     topics,
		limit:      domain.MaxResults,
	}
}

// SetResultLimit sets the limit used when a call does not pass one.
// Values outside 1..domain.MaxResults mean domain.MaxResults.
func (s *RecommendationService) SetResultLimit(limit int) {
	s.limit = domain.RecommendOptions{Limit: limit}.EffectiveLimit()
}

// Recommend ranks the genre's reviews that match the keyword string.
func (s *RecommendationService) Recommend(
	ctx context.Context, genre, keywords string, opts domain.RecommendOptions,
) (*domain.Recommendation, error) {
	genre = strings.ToLower(strings.TrimSpace(genre))
	rec := &domain.Recommendation{
		QueryID:  uuid.NewString(),
		Genre:    genre,
		Keywords: domain.ParseKeywords(keywords),
		Results:  []domain.ScoredReview{},
	}

	logger.Section("Recommendation")
	logger.Debug("Query %s: genre=%q keywords=%q", rec.QueryID, genre, keywords)

	reviews, err := s.loadPartition(ctx, genre)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnknownGenre) {
		logger.Info("Genre %q: %v", genre, err)
		rec.Outcome = domain.OutcomeGenreNotFound
		return rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	if len(rec.Keywords) == 0 {
		logger.Info("No keywords after parsing %q", keywords)
		rec.Outcome = domain.OutcomeEmptyKeywords
		return rec, nil
	}

	done := logger.Stage("Matching")
	matches := s.matcher.FindMatches(reviews, rec.Keywords)
	logger.Debug("%d of %d reviews matched %v", len(matches), len(reviews), []string(rec.Keywords))
	done()
	if len(matches) == 0 {
		rec.Outcome = domain.OutcomeNoMatches
		return rec, nil
	}

	done = logger.Stage("Ranking")
	ranked := rank(s.scorer.Annotate(matches), s.effectiveLimit(opts))
	logger.Debug("Keeping %d of %d matches", len(ranked), len(matches))
	done()

	done = logger.Stage("Topics")
	documents := make([]string, len(ranked))
	for i, r := range ranked {
		documents[i] = r.Summary
	}
	rec.Topics = s.topics.ExtractTopics(ctx, documents)
	logger.Debug("Topic status: %s", rec.Topics.Status)
	done()

	rec.Outcome = domain.OutcomeRanked
	rec.Results = ranked
	logger.Info("Query %s: %d result(s)", rec.QueryID, len(ranked))
	return rec, nil
}

// Genres lists the vocabulary with partition availability.
func (s *RecommendationService) Genres(ctx context.Context) ([]domain.GenreInfo, error) {
	infos := make([]domain.GenreInfo, 0, len(domain.Genres))
	for _, g := range domain.Genres {
		info, err := s.partitions.Stat(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("stat genre %q: %w", g, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// loadPartition resolves genre against the vocabulary and reads its rows.
// Rows labelled with another genre are dropped.
func (s *RecommendationService) loadPartition(ctx context.Context, genre string) ([]domain.Review, error) {
	if !domain.IsKnownGenre(genre) {
		return nil, fmt.Errorf("%q: %w", genre, domain.ErrUnknownGenre)
	}

	reviews, err := s.partitions.Load(ctx, genre)
	if err != nil {
		return nil, err
	}

	kept := reviews[:0]
	for _, r := range reviews {
		if r.Categories != genre {
			logger.Warn("Skipping %q: labelled %q in %q partition", r.Title, r.Categories, genre)
			continue
		}
		kept = append(kept, r)
	}
	logger.Debug("Loaded %d reviews for %q", len(kept), genre)
	return kept, nil
}

func (s *RecommendationService) effectiveLimit(opts domain.RecommendOptions) int {
	if opts.Limit == 0 {
		return s.limit
	}
	return opts.EffectiveLimit()
}

// rank sets TotalScore, orders by it descending and truncates to limit.
// The sort is stable, so ties keep matcher order.
func rank(scored []domain.ScoredReview, limit int) []domain.ScoredReview {
	for i := range scored {
		scored[i].TotalScore = domain.CompositeScore(scored[i].Score, scored[i].Sentiment)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
