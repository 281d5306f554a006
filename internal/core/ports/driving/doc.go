// Package driving defines the operations the CLI, TUI and MCP adapters
// call into: RecommendationService, PartitionService and SettingsService.
//
// Implementations live in internal/core/services.
package driving
