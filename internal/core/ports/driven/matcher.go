package driven

import "github.com/custodia-labs/folio/internal/core/domain"

// KeywordMatcher decides whether review text approximately contains keywords.
type KeywordMatcher interface {
	// Matches reports whether any keyword approximately equals a whitespace token of text.
	// Empty text never matches.
	Matches(text string, keywords domain.Keywords) bool

	// FindMatches returns the matching reviews de-duplicated by title.
	// The first matching review of a title wins and input order is preserved.
	FindMatches(reviews []domain.Review, keywords domain.Keywords) []domain.Match
}
