package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"funny", "funny", 100},
		{"Funny", "funny", 100},
		{"funny", "funny!", 91},
		{"funny", "funy", 89},
		{"mystery", "history", 57},
		{"cat", "dog", 0},
		{"", "anything", 0},
		{"anything", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
			assert.Equal(t, tt.want, Ratio(tt.b, tt.a), "ratio must be symmetric")
		})
	}
}

func TestNew_ThresholdFallback(t *testing.T) {
	assert.Equal(t, DefaultThreshold, New(0).Threshold())
	assert.Equal(t, DefaultThreshold, New(-5).Threshold())
	assert.Equal(t, DefaultThreshold, New(101).Threshold())
	assert.Equal(t, 90, New(90).Threshold())
}

func TestMatcher_Matches(t *testing.T) {
	m := New(DefaultThreshold)

	tests := []struct {
		name     string
		text     string
		keywords domain.Keywords
		want     bool
	}{
		{"exact token", "a funny little story", domain.Keywords{"funny"}, true},
		{"case-insensitive text", "A FUNNY story", domain.Keywords{"funny"}, true},
		{"upper keyword", "a funny story", domain.Keywords{"FUNNY"}, true},
		{"typo tolerated", "a funy story", domain.Keywords{"funny"}, true},
		{"trailing punctuation tolerated", "so funny!", domain.Keywords{"funny"}, true},
		{"any keyword suffices", "a dark tale", domain.Keywords{"funny", "dark"}, true},
		{"below threshold", "a history lesson", domain.Keywords{"mystery"}, false},
		{"phrase absent", "a cookbook for weeknights", domain.Keywords{"mary", "jane"}, false},
		{"empty text", "", domain.Keywords{"funny"}, false},
		{"no keywords", "funny", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.text, tt.keywords))
		})
	}
}

func TestMatcher_FindMatches(t *testing.T) {
	m := New(DefaultThreshold)
	reviews := []domain.Review{
		{Title: "A", Summary: "not relevant", Score: 5},
		{Title: "B", Summary: "a thrilling mystery", Score: 3},
		{Title: "C", Summary: "another mystery", Score: 4},
		{Title: "B", Summary: "mystery again", Score: 1},
		{Title: "A", Summary: "mystery at last", Score: 2},
		{Title: "D", Summary: "", Score: 5},
	}

	matches := m.FindMatches(reviews, domain.Keywords{"mystery"})

	require.Len(t, matches, 3)
	assert.Equal(t, "B", matches[0].Title)
	assert.Equal(t, 3.0, matches[0].Score, "first matching review of a title wins")
	assert.Equal(t, "C", matches[1].Title)
	assert.Equal(t, "A", matches[2].Title)
	assert.Equal(t, 2.0, matches[2].Score, "a non-matching earlier review does not claim the title")
	for _, match := range matches {
		assert.True(t, match.KeywordMatch)
	}
}

func TestMatcher_FindMatches_Empty(t *testing.T) {
	m := New(DefaultThreshold)
	assert.Empty(t, m.FindMatches(nil, domain.Keywords{"x"}))
	assert.Empty(t, m.FindMatches([]domain.Review{{Title: "A", Summary: "abc"}}, domain.Keywords{"zzz"}))
}
