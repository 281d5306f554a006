package driving

import "github.com/custodia-labs/folio/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetPartitionBackend updates the partition storage backend.
	SetPartitionBackend(backend domain.PartitionBackend) error

	// SetPartitionsDir updates the CSV partition directory.
	SetPartitionsDir(dir string) error

	// SetMatchThreshold updates the fuzzy match threshold (0-100).
	SetMatchThreshold(threshold int) error

	// SetResultLimit updates the ranked result cap (1..domain.MaxResults).
	SetResultLimit(limit int) error

	// Reset removes every stored setting so defaults apply.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
