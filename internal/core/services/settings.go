package services

import (
	"fmt"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPartitionBackend  = "partitions.backend"
	keyPartitionDir      = "partitions.dir"
	keyPartitionDatabase = "partitions.database"
	keyMatchThreshold    = "matching.threshold"
	keyResultLimit       = "ranking.limit"
	keyTopicSeed         = "topics.seed"
	keyTopicIterations   = "topics.iterations"
	keyTopicStem         = "topics.stem"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Partitions: domain.PartitionSettings{
			Backend:  s.getBackend(defaults.Partitions.Backend),
			Dir:      s.configStore.GetString(keyPartitionDir),
			Database: s.configStore.GetString(keyPartitionDatabase),
		},
		Matching: domain.MatchingSettings{
			Threshold: s.getIntInRange(keyMatchThreshold, 1, 100, defaults.Matching.Threshold),
		},
		Ranking: domain.RankingSettings{
			Limit: s.getIntInRange(keyResultLimit, 1, domain.MaxResults, defaults.Ranking.Limit),
		},
		Topics: domain.TopicSettings{
			Seed:       int64(s.getInt(keyTopicSeed, int(defaults.Topics.Seed))),
			Iterations: s.getIntInRange(keyTopicIterations, 1, 10000, defaults.Topics.Iterations),
			Stem:       s.getBool(keyTopicStem, defaults.Topics.Stem),
		},
	}, nil
}

// Save persists all settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Partitions.Backend.IsValid() {
		return fmt.Errorf("partition backend %q: %w", settings.Partitions.Backend, domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyPartitionBackend, settings.Partitions.Backend.String()},
		{keyPartitionDir, settings.Partitions.Dir},
		{keyPartitionDatabase, settings.Partitions.Database},
		{keyMatchThreshold, settings.Matching.Threshold},
		{keyResultLimit, settings.Ranking.Limit},
		{keyTopicSeed, settings.Topics.Seed},
		{keyTopicIterations, settings.Topics.Iterations},
		{keyTopicStem, settings.Topics.Stem},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return s.configStore.Save()
}

// SetPartitionBackend updates the partition storage backend.
func (s *SettingsService) SetPartitionBackend(backend domain.PartitionBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("partition backend %q: %w", backend, domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyPartitionBackend, backend.String())
}

// SetPartitionsDir updates the CSV partition directory. Empty restores the default.
func (s *SettingsService) SetPartitionsDir(dir string) error {
	if dir == "" {
		return s.configStore.Unset(keyPartitionDir)
	}
	return s.configStore.Set(keyPartitionDir, dir)
}

// SetMatchThreshold updates the fuzzy match threshold.
func (s *SettingsService) SetMatchThreshold(threshold int) error {
	if threshold < 1 || threshold > 100 {
		return fmt.Errorf("match threshold %d outside 1..100: %w", threshold, domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyMatchThreshold, threshold)
}

// SetResultLimit updates the ranked result cap.
func (s *SettingsService) SetResultLimit(limit int) error {
	if limit < 1 || limit > domain.MaxResults {
		return fmt.Errorf("result limit %d outside 1..%d: %w", limit, domain.MaxResults, domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyResultLimit, limit)
}

// Reset removes every stored setting so defaults apply.
func (s *SettingsService) Reset() error {
	for _, key := range s.configStore.Keys() {
		if err := s.configStore.Unset(key); err != nil {
			return fmt.Errorf("unsetting %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getIntInRange(key string, lo, hi, defaultVal int) int {
	v := s.getInt(key, defaultVal)
	if v < lo || v > hi {
		return defaultVal
	}
	return v
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.PartitionBackend) domain.PartitionBackend {
	backend := domain.PartitionBackend(s.configStore.GetString(keyPartitionBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
