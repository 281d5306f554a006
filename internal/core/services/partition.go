package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure PartitionService implements the interface.
var _ driving.PartitionService = (*PartitionService)(nil)

// maxConcurrentWrites bounds the number of partitions written at once.
const maxConcurrentWrites = 4

// PartitionService splits a raw corpus into one partition per genre.
type PartitionService struct {
	decoder    driven.CorpusDecoder
	normaliser driven.LabelNormaliser
	writer     driven.PartitionWriter
}

// NewPartitionService creates a new partition service.
func NewPartitionService(
	decoder driven.CorpusDecoder,
	normaliser driven.LabelNormaliser,
	writer driven.PartitionWriter,
) *PartitionService {
	return &PartitionService{
		decoder:    decoder,
		normaliser: normaliser,
		writer:     writer,
	}
}

// Partition normalises every row's category label and writes the rows of
// each recognised genre as one partition. Row order is preserved within a
// partition. Rows whose label is not in the vocabulary are counted and dropped.
func (s *PartitionService) Partition(ctx context.Context, corpus io.Reader) (*domain.PartitionReport, error) {
	logger.Section("Partitioning")

	rows, err := s.decoder.Decode(corpus)
	if err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}

	report := &domain.PartitionReport{
		RowsRead: len(rows),
		Written:  make(map[string]int),
	}

	groups := make(map[string][]domain.Review)
	for _, r := range rows {
		r.Categories = s.normaliser.Normalise(r.Categories)
		if !domain.IsKnownGenre(r.Categories) {
			report.Unrecognised++
			continue
		}
		groups[r.Categories] = append(groups[r.Categories], r)
	}
	logger.Debug("Read %d rows, %d unrecognised, %d genres present", len(rows), report.Unrecognised, len(groups))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)

	for _, genre := range domain.Genres {
		reviews, ok := groups[genre]
		if !ok {
			logger.Debug("No data found for genre %q, skipping", genre)
			report.Skipped = append(report.Skipped, genre)
			continue
		}

		g.Go(func() error {
			if err := s.writer.Write(gctx, genre, reviews); err != nil {
				return fmt.Errorf("writing %q: %w", genre, err)
			}
			mu.Lock()
			report.Written[genre] = len(reviews)
			mu.Unlock()
			logger.Debug("Saved %q (%d rows)", genre, len(reviews))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	logger.Info("Wrote %d partitions, skipped %d", len(report.Written), len(report.Skipped))
	return report, nil
}
