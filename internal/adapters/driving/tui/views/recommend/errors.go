package recommend

import "errors"

// Error definitions for the recommend view.
var (
	// ErrNoRecommendService indicates that no recommendation service was provided.
	ErrNoRecommendService = errors.New("recommendation service is required")

	// ErrNoGenre indicates the query was submitted without a genre.
	ErrNoGenre = errors.New("enter a genre")
)
