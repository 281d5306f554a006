package tui

import "errors"

// ErrMissingRecommendService is returned when the recommendation service is not provided.
var ErrMissingRecommendService = errors.New("tui: recommendation service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")
