package driven

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// TopicExtractor summarises recurring themes across a small batch of documents.
// It never fails: degraded cases are reported through the summary status.
type TopicExtractor interface {
	ExtractTopics(ctx context.Context, documents []string) domain.TopicSummary
}
