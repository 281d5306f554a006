package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// PartitionService splits a raw review corpus into per-genre partitions.
type PartitionService interface {
	// Partition reads a CSV corpus and writes one partition per recognised genre.
	Partition(ctx context.Context, corpus io.Reader) (*domain.PartitionReport, error)
}
