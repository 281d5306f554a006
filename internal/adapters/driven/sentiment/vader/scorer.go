// Package vader scores the polarity of short review texts with the VADER
// rule-based model: lexicon valences adjusted for intensifiers, negation,
// capitalisation, contrastive "but" clauses and trailing punctuation, then
// squashed into a compound score in [-1, 1].
package vader

import (
	"math"
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.SentimentScorer = (*Scorer)(nil)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// sharedAnalyzer builds the analyser, and its lexicon, once per process.
func sharedAnalyzer() *govader.SentimentIntensityAnalyzer {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
	return analyzer
}

// Scorer computes compound polarity scores. It is safe for concurrent use;
// the analyser only reads its lexicon after construction.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a scorer backed by the full VADER lexicon.
func New() *Scorer {
	return &Scorer{analyzer: sharedAnalyzer()}
}

// Score returns the compound polarity of text rounded to four decimals.
// Blank text scores 0.
func (s *Scorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	compound := s.analyzer.PolarityScores(text).Compound
	if math.IsNaN(compound) {
		return 0
	}
	compound = math.Max(-1, math.Min(1, compound))
	return math.Round(compound*10000) / 10000
}

// Annotate attaches a sentiment score to every match in order.
// TotalScore is left for the caller to compute.
func (s *Scorer) Annotate(matches []domain.Match) []domain.ScoredReview {
	scored := make([]domain.ScoredReview, len(matches))
	for i, m := range matches {
		scored[i] = domain.ScoredReview{
			Match:     m,
			Sentiment: s.Score(m.Summary),
		}
	}
	return scored
}
