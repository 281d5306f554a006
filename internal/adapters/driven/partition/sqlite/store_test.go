package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio/internal/core/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "data", "partitions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func sampleReviews(genre string) []domain.Review {
	return []domain.Review{
		{Title: "First", Categories: genre, Summary: "a gentle start", Score: 4, Publisher: "P1"},
		{Title: "Second", Categories: genre, Summary: "", Score: 2.5, Publisher: ""},
		{Title: "First", Categories: genre, Summary: "duplicate title", Score: 1, Publisher: "P1"},
	}
}

func TestStore_WriteThenLoad(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "travel", sampleReviews("travel")))

	reviews, err := store.Load(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, sampleReviews("travel"), reviews, "rows come back in partition order")
}

func TestStore_WriteReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "travel", sampleReviews("travel")))
	replacement := []domain.Review{{Title: "Only", Categories: "travel", Score: 3}}
	require.NoError(t, store.Write(ctx, "travel", replacement))

	reviews, err := store.Load(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, replacement, reviews)

	info, err := store.Stat(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, 1, info.Reviews)
}

func TestStore_GenresAreIsolated(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "travel", sampleReviews("travel")))
	require.NoError(t, store.Write(ctx, "poetry", sampleReviews("poetry")[:1]))

	travel, err := store.Load(ctx, "travel")
	require.NoError(t, err)
	for _, r := range travel {
		assert.Equal(t, "travel", r.Categories)
	}

	poetry, err := store.Load(ctx, "poetry")
	require.NoError(t, err)
	assert.Len(t, poetry, 1)
}

func TestStore_Load_NotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.Load(context.Background(), "history")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Stat(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "travel", sampleReviews("travel")))

	info, err := store.Stat(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, domain.GenreInfo{Name: "travel", Available: true, Reviews: 3}, info)

	info, err = store.Stat(ctx, "history")
	require.NoError(t, err)
	assert.False(t, info.Available)
}

func TestStore_Write_EmptyGenre(t *testing.T) {
	store := setupTestStore(t)
	err := store.Write(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partitions.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(ctx, "travel", sampleReviews("travel")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	var versions int
	require.NoError(t, reopened.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, 1, versions, "migrations are applied once")

	reviews, err := reopened.Load(ctx, "travel")
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestStore_ConcurrentWrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	genres := []string{"art", "law", "music", "pets"}
	errs := make([]error, len(genres))
	for i, g := range genres {
		wg.Add(1)
		go func(i int, g string) {
			defer wg.Done()
			errs[i] = store.Write(ctx, g, sampleReviews(g))
		}(i, g)
	}
	wg.Wait()

	for i, g := range genres {
		require.NoError(t, errs[i], g)
		info, err := store.Stat(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, 3, info.Reviews, g)
	}
}
