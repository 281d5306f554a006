package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Description(t *testing.T) {
	assert.Equal(t, "No data for this genre", OutcomeGenreNotFound.Description())
	assert.Equal(t, "No recommendations found. Try a different keyword or genre.", OutcomeNoMatches.Description())
	assert.Equal(t, "Enter at least one keyword", OutcomeEmptyKeywords.Description())
	assert.Equal(t, "Recommendations found", OutcomeRanked.Description())
	assert.Equal(t, "Unknown", Outcome("other").Description())
}

func TestRecommendOptions_EffectiveLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, MaxResults},
		{-3, MaxResults},
		{1, 1},
		{7, 7},
		{MaxResults, MaxResults},
		{MaxResults + 1, MaxResults},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RecommendOptions{Limit: tt.limit}.EffectiveLimit(), "limit %d", tt.limit)
	}
}

func TestRecommendation_Empty(t *testing.T) {
	assert.True(t, (&Recommendation{}).Empty())
	assert.False(t, (&Recommendation{Results: []ScoredReview{{}}}).Empty())
}

func TestTopicSummary(t *testing.T) {
	ok := NewTopicSummary([]TopicLabel{
		{Index: 1, Words: []string{"magic", "school"}},
		{Index: 2, Words: []string{"war"}},
	})
	assert.Equal(t, TopicStatusOK, ok.Status)
	assert.Equal(t, "Topic 1: magic school | Topic 2: war", ok.String())

	assert.Equal(t, TopicStatusInsufficientData, InsufficientTopics().Status)
	assert.Equal(t, TopicsInsufficientText, InsufficientTopics().Text)
	assert.Equal(t, TopicStatusSparseVocabulary, SparseTopics().Status)

	failed := FailedTopics(errors.New("boom"))
	assert.Equal(t, TopicStatusFailed, failed.Status)
	assert.Equal(t, "Could not extract topics: boom", failed.Text)
	assert.Empty(t, failed.Labels)
}

func TestGenres(t *testing.T) {
	seen := make(map[string]bool)
	for _, g := range Genres {
		assert.False(t, seen[g], "duplicate genre %q", g)
		seen[g] = true
		assert.True(t, IsKnownGenre(g))
	}
	assert.True(t, IsKnownGenre("self-help"))
	assert.False(t, IsKnownGenre("Fiction"), "labels are case-sensitive normalised forms")
	assert.False(t, IsKnownGenre(""))
}
