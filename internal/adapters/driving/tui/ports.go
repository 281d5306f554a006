// Package tui provides an interactive terminal user interface for folio.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Recommend answers queries and lists genres.
	Recommend driving.RecommendationService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(recommend driving.RecommendationService, settings driving.SettingsService) *Ports {
	return &Ports{
		Recommend: recommend,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Recommend == nil {
		return ErrMissingRecommendService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
