package domain

import "strings"

// Review is one row of a genre partition.
// Reviews are immutable once loaded.
type Review struct {
	// Title is the book title. It is the de-duplication key.
	Title string

	// Categories is the normalised genre label.
	Categories string

	// Summary is the free-text review summary. Empty means missing.
	Summary string

	// Score is the star rating on the source scale.
	Score float64

	// Publisher is the book publisher.
	Publisher string
}

// Keywords is an ordered sequence of non-empty lowercase tokens.
type Keywords []string

// ParseKeywords splits raw user input on whitespace and lowercases each token.
// Empty tokens are discarded; blank input yields an empty set.
func ParseKeywords(raw string) Keywords {
	fields := strings.Fields(raw)
	keywords := make(Keywords, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		keywords = append(keywords, strings.ToLower(f))
	}
	return keywords
}

// String joins the keywords with single spaces.
func (k Keywords) String() string {
	return strings.Join(k, " ")
}

// Match is a review whose summary matched at least one keyword.
type Match struct {
	Review

	// KeywordMatch records the matcher verdict. Always true for emitted matches.
	KeywordMatch bool
}

// ScoredReview is a match annotated with sentiment and the ranking key.
type ScoredReview struct {
	Match

	// Sentiment is the compound polarity of the summary in [-1, 1].
	Sentiment float64

	// TotalScore is (Score + Sentiment) / 2.
	// Score and Sentiment live on different scales; the average is kept
	// literally rather than normalised.
	TotalScore float64
}

// CompositeScore returns the ranking key for a star rating and a sentiment value.
func CompositeScore(score, sentiment float64) float64 {
	return (score + sentiment) / 2
}
