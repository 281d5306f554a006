package domain

// MaxResults is the hard cap on ranked results per recommendation.
const MaxResults = 10

// Outcome describes how a recommend call ended.
// Every outcome other than OutcomeRanked carries no results.
type Outcome string

// Recommendation outcomes.
const (
	// OutcomeRanked means at least one review matched and was ranked.
	OutcomeRanked Outcome = "ranked"

	// OutcomeGenreNotFound means the genre is unknown or has no partition.
	OutcomeGenreNotFound Outcome = "genre_not_found"

	// OutcomeEmptyKeywords means no keyword tokens remained after parsing.
	OutcomeEmptyKeywords Outcome = "empty_keywords"

	// OutcomeNoMatches means no review matched the keywords.
	OutcomeNoMatches Outcome = "no_matches"
)

// Description returns a human-readable description of the outcome.
func (o Outcome) Description() string {
	switch o {
	case OutcomeRanked:
		return "Recommendations found"
	case OutcomeGenreNotFound:
		return "No data for this genre"
	case OutcomeEmptyKeywords:
		return "Enter at least one keyword"
	case OutcomeNoMatches:
		return "No recommendations found. Try a different keyword or genre."
	default:
		return "Unknown"
	}
}

// Recommendation is the response of one recommend call.
type Recommendation struct {
	// QueryID identifies the call in logs.
	QueryID string

	// Genre is the requested genre label.
	Genre string

	// Keywords are the parsed keyword tokens.
	Keywords Keywords

	// Outcome says why Results may be empty.
	Outcome Outcome

	// Results are ranked by TotalScore descending. At most MaxResults.
	Results []ScoredReview

	// Topics summarises the themes of Results.
	Topics TopicSummary
}

// Empty reports whether the recommendation carries no results.
func (r *Recommendation) Empty() bool {
	return len(r.Results) == 0
}

// RecommendOptions tunes a recommend call.
type RecommendOptions struct {
	// Limit caps the number of results. Values outside 1..MaxResults mean MaxResults.
	Limit int
}

// EffectiveLimit returns the limit clamped to 1..MaxResults.
func (o RecommendOptions) EffectiveLimit() int {
	if o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}
