package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.PartitionStore  = (*PartitionStore)(nil)
	_ driven.PartitionWriter = (*PartitionStore)(nil)
)

// PartitionStore is an in-memory implementation of the partition ports.
type PartitionStore struct {
	mu         sync.RWMutex
	partitions map[string][]domain.Review
	loads      int
}

// NewPartitionStore creates a new in-memory partition store.
func NewPartitionStore() *PartitionStore {
	return &PartitionStore{
		partitions: make(map[string][]domain.Review),
	}
}

// Load returns a copy of the genre's reviews.
func (s *PartitionStore) Load(ctx context.Context, genre string) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++

	reviews, ok := s.partitions[genre]
	if !ok {
		return nil, fmt.Errorf("partition %q: %w", genre, domain.ErrNotFound)
	}
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out, nil
}

// Stat reports whether the genre has a partition.
func (s *PartitionStore) Stat(_ context.Context, genre string) (domain.GenreInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews, ok := s.partitions[genre]
	return domain.GenreInfo{Name: genre, Available: ok, Reviews: len(reviews)}, nil
}

// Write replaces the genre's partition with a copy of reviews.
func (s *PartitionStore) Write(ctx context.Context, genre string, reviews []domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]domain.Review, len(reviews))
	copy(stored, reviews)
	s.partitions[genre] = stored
	return nil
}

// Loads returns how many times Load has been called.
func (s *PartitionStore) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}
