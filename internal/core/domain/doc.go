// Package domain defines the core business entities for folio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Review: One row of a genre partition
//   - Keywords: Normalised user keyword tokens
//   - Match / ScoredReview: Pipeline stages of a recommendation
//   - TopicSummary: Themes extracted from the ranked reviews
//   - Recommendation: The response of one recommend call
//   - Genres: The single shared genre vocabulary
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
