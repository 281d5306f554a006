// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/folio/internal/core/domain"
)

// RecommendRequested is a command to run a recommendation query.
type RecommendRequested struct {
	Genre    string
	Keywords string
	Options  domain.RecommendOptions
}

// RecommendCompleted carries a recommendation back to the model.
type RecommendCompleted struct {
	Recommendation *domain.Recommendation
	Err            error
}

// GenresLoaded carries the genre vocabulary with availability.
type GenresLoaded struct {
	Genres []domain.GenreInfo
	Err    error
}

// GenreSelected is sent when a genre is picked from the genres view.
type GenreSelected struct {
	Genre string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewRecommend is the query form and ranked results view.
	ViewRecommend
	// ViewGenres lists the genre vocabulary.
	ViewGenres
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewRecommend:
		return "recommend"
	case ViewGenres:
		return "genres"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
