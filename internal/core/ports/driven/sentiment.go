package driven

import "github.com/custodia-labs/folio/internal/core/domain"

// SentimentScorer maps free text to a compound polarity score.
type SentimentScorer interface {
	// Score returns a polarity in [-1, 1]. Blank text scores 0.
	Score(text string) float64

	// Annotate scores the summary of each match, preserving order.
	Annotate(matches []domain.Match) []domain.ScoredReview
}
