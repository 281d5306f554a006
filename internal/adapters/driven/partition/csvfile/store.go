// Package csvfile stores genre partitions as one CSV file per genre,
// named "<genre>_df.csv", in a single directory.
package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.PartitionStore  = (*Store)(nil)
	_ driven.PartitionWriter = (*Store)(nil)
)

const fileSuffix = "_df.csv"

// Store reads and writes CSV partitions under a directory.
type Store struct {
	dir   string
	codec *Codec
}

// NewStore creates a store rooted at dir.
// If dir is empty, defaults to ~/.folio/partitions.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".folio", "partitions")
	}
	return &Store{dir: dir, codec: NewCodec()}, nil
}

// Dir returns the partition directory.
func (s *Store) Dir() string {
	return s.dir
}

// PathFor returns the partition file of a genre.
func (s *Store) PathFor(genre string) string {
	return filepath.Join(s.dir, genre+fileSuffix)
}

// Load reads a genre partition. The file is closed before returning.
func (s *Store) Load(ctx context.Context, genre string) ([]domain.Review, error) {
	if err := validGenre(genre); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.PathFor(genre))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("partition %q: %w", genre, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening partition %q: %w", genre, err)
	}
	defer f.Close()

	reviews, err := s.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading partition %q: %w", genre, err)
	}
	return reviews, nil
}

// Stat reports whether a partition file exists and counts its rows.
func (s *Store) Stat(ctx context.Context, genre string) (domain.GenreInfo, error) {
	info := domain.GenreInfo{Name: genre}
	reviews, err := s.Load(ctx, genre)
	if errors.Is(err, domain.ErrNotFound) {
		return info, nil
	}
	if err != nil {
		return info, err
	}
	info.Available = true
	info.Reviews = len(reviews)
	return info, nil
}

// Write replaces a genre partition. The file is written to a temporary
// name and renamed into place.
func (s *Store) Write(ctx context.Context, genre string, reviews []domain.Review) error {
	if err := validGenre(genre); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating partition directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".partition-*.csv")
	if err != nil {
		return fmt.Errorf("creating temporary partition: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := s.codec.Encode(tmp, reviews); err != nil {
		tmp.Close()
		return fmt.Errorf("writing partition %q: %w", genre, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing partition %q: %w", genre, err)
	}
	if err := os.Rename(tmpPath, s.PathFor(genre)); err != nil {
		return fmt.Errorf("replacing partition %q: %w", genre, err)
	}
	return nil
}

func validGenre(genre string) error {
	if genre == "" || strings.ContainsAny(genre, `/\`) || strings.Contains(genre, "..") {
		return fmt.Errorf("genre %q: %w", genre, domain.ErrInvalidInput)
	}
	return nil
}
