package domain

const unknownDescription = "Unknown"

// PartitionBackend selects where genre partitions are stored.
type PartitionBackend string

// Available partition backends.
const (
	// PartitionBackendCSV stores one CSV file per genre in a directory.
	PartitionBackendCSV PartitionBackend = "csv"

	// PartitionBackendSQLite stores all genres in one SQLite database.
	PartitionBackendSQLite PartitionBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b PartitionBackend) IsValid() bool {
	switch b {
	case PartitionBackendCSV, PartitionBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b PartitionBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b PartitionBackend) Description() string {
	switch b {
	case PartitionBackendCSV:
		return "CSV (one file per genre)"
	case PartitionBackendSQLite:
		return "SQLite (single database)"
	default:
		return unknownDescription
	}
}

// AllPartitionBackends returns all available partition backends.
func AllPartitionBackends() []PartitionBackend {
	return []PartitionBackend{PartitionBackendCSV, PartitionBackendSQLite}
}

// PartitionSettings holds partition storage configuration.
type PartitionSettings struct {
	// Backend selects the storage format.
	Backend PartitionBackend

	// Dir is the directory holding CSV partitions.
	// Empty means ~/.folio/partitions.
	Dir string

	// Database is the SQLite database file.
	// Empty means ~/.folio/data/partitions.db.
	Database string
}

// MatchingSettings holds fuzzy matching configuration.
type MatchingSettings struct {
	// Threshold is the minimum similarity ratio (0-100) for a token to match.
	Threshold int
}

// RankingSettings holds ranking configuration.
type RankingSettings struct {
	// Limit caps the number of ranked results (1..MaxResults).
	Limit int
}

// TopicSettings holds topic extraction configuration.
type TopicSettings struct {
	// Seed makes the topic model reproducible.
	Seed int64

	// Iterations is the number of Gibbs sampling sweeps.
	Iterations int

	// Stem groups inflected vocabulary terms under one stem.
	Stem bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Partitions PartitionSettings
	Matching   MatchingSettings
	Ranking    RankingSettings
	Topics     TopicSettings
}

// Default values for settings.
const (
	DefaultMatchThreshold  = 80
	DefaultTopicIterations = 200
)

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Partitions: PartitionSettings{
			Backend: PartitionBackendCSV,
		},
		Matching: MatchingSettings{
			Threshold: DefaultMatchThreshold,
		},
		Ranking: RankingSettings{
			Limit: MaxResults,
		},
		Topics: TopicSettings{
			Seed:       0,
			Iterations: DefaultTopicIterations,
			Stem:       false,
		},
	}
}
