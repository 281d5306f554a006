// Package fuzzy implements keyword matching tolerant of small spelling
// differences between user keywords and review vocabulary.
package fuzzy

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure Matcher implements the interface.
var _ driven.KeywordMatcher = (*Matcher)(nil)

// DefaultThreshold is the minimum ratio at which a keyword matches a token.
const DefaultThreshold = domain.DefaultMatchThreshold

// Matcher compares each keyword against every whitespace token of a text.
type Matcher struct {
	threshold int
}

// New creates a matcher. Thresholds outside 1..100 fall back to DefaultThreshold.
func New(threshold int) *Matcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Matches reports whether any keyword reaches the threshold against any token.
func (m *Matcher) Matches(text string, keywords domain.Keywords) bool {
	if text == "" || len(keywords) == 0 {
		return false
	}

	tokens := strings.Fields(strings.ToLower(text))
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, tok := range tokens {
			if Ratio(kw, tok) >= m.threshold {
				return true
			}
		}
	}
	return false
}

// FindMatches returns matching reviews in input order, one per title.
func (m *Matcher) FindMatches(reviews []domain.Review, keywords domain.Keywords) []domain.Match {
	seen := make(map[string]struct{})
	var matches []domain.Match

	for _, r := range reviews {
		if _, dup := seen[r.Title]; dup {
			continue
		}
		if !m.Matches(r.Summary, keywords) {
			continue
		}
		seen[r.Title] = struct{}{}
		matches = append(matches, domain.Match{Review: r, KeywordMatch: true})
	}
	return matches
}

// Ratio returns the indel similarity of a and b on a 0-100 scale:
// twice the longest common subsequence over the combined rune length,
// rounded half to even. It is symmetric and case-insensitive.
func Ratio(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	lcs := edlib.LCS(a, b)
	return int(math.RoundToEven(100 * float64(2*lcs) / float64(total)))
}
