// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PartitionStore: Reads the reviews of one genre partition
//   - KeywordMatcher: Fuzzy keyword matching over review summaries
//   - SentimentScorer: Compound polarity of free text
//   - TopicExtractor: Topic labels over a small document batch
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - PartitionWriter: Only needed by the partitioning step.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
