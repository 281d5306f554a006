package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// PartitionStore reads genre partitions.
// Implementations open their underlying resource per call and release it
// before returning.
type PartitionStore interface {
	// Load returns the reviews of a genre in partition order.
	// Returns domain.ErrNotFound if no partition exists for the genre.
	Load(ctx context.Context, genre string) ([]domain.Review, error)

	// Stat reports whether a partition exists and how many reviews it holds.
	Stat(ctx context.Context, genre string) (domain.GenreInfo, error)
}

// PartitionWriter persists genre partitions produced by the partitioning step.
type PartitionWriter interface {
	// Write replaces the partition of a genre with the given reviews.
	Write(ctx context.Context, genre string, reviews []domain.Review) error
}

// CorpusDecoder reads review rows from a raw tabular corpus.
type CorpusDecoder interface {
	// Decode returns every row in input order. Categories are returned raw,
	// before label normalisation. Returns domain.ErrMissingColumn if a
	// required column is absent from the header.
	Decode(r io.Reader) ([]domain.Review, error)
}
