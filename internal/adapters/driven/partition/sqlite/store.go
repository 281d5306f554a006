// Package sqlite stores every genre partition in a single SQLite database.
// Rows keep their partition order through a per-genre position column.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/folio/internal/adapters/driven/partition/sqlite/migrations"
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.PartitionStore  = (*Store)(nil)
	_ driven.PartitionWriter = (*Store)(nil)
)

// Store is a SQLite-backed partition store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at path.
// If path is empty, defaults to ~/.folio/data/partitions.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".folio", "data", "partitions.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Writers serialise on one connection; SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies pending "NNN_name.up.sql" files in version order and
// records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// Load returns a genre's reviews in partition order.
func (s *Store) Load(ctx context.Context, genre string) ([]domain.Review, error) {
	info, err := s.Stat(ctx, genre)
	if err != nil {
		return nil, err
	}
	if !info.Available {
		return nil, fmt.Errorf("partition %q: %w", genre, domain.ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, categories, review_summary, review_score, publisher
		FROM reviews
		WHERE genre = ?
		ORDER BY position
	`, genre)
	if err != nil {
		return nil, fmt.Errorf("querying partition %q: %w", genre, err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0, info.Reviews)
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(&r.Title, &r.Categories, &r.Summary, &r.Score, &r.Publisher); err != nil {
			return nil, fmt.Errorf("scanning partition %q: %w", genre, err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating partition %q: %w", genre, err)
	}
	return reviews, nil
}

// Stat reads the partition's row count from the partitions table.
func (s *Store) Stat(ctx context.Context, genre string) (domain.GenreInfo, error) {
	info := domain.GenreInfo{Name: genre}
	err := s.db.QueryRowContext(ctx, "SELECT rows FROM partitions WHERE genre = ?", genre).Scan(&info.Reviews)
	if errors.Is(err, sql.ErrNoRows) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("reading partition %q: %w", genre, err)
	}
	info.Available = true
	return info, nil
}

// Write replaces a genre's partition in one transaction.
func (s *Store) Write(ctx context.Context, genre string, reviews []domain.Review) (err error) {
	if genre == "" {
		return fmt.Errorf("genre: %w", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM partitions WHERE genre = ?", genre); err != nil {
		return fmt.Errorf("clearing partition %q: %w", genre, err)
	}
	if _, err = tx.ExecContext(ctx, "INSERT INTO partitions (genre, rows) VALUES (?, ?)", genre, len(reviews)); err != nil {
		return fmt.Errorf("registering partition %q: %w", genre, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reviews (genre, position, title, categories, review_summary, review_score, publisher)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range reviews {
		if _, err = stmt.ExecContext(ctx, genre, i, r.Title, r.Categories, r.Summary, r.Score, r.Publisher); err != nil {
			return fmt.Errorf("inserting review %q: %w", r.Title, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing partition %q: %w", genre, err)
	}
	return nil
}
