package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heritageapp/heritage-server/internal/domain"
	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})
	return s
}

func TestEntity_CreateAndGet(t *testing.T) {
	s := setupTestStore(t)

	assignment := &domain.GeneAssignment{
		UserID:      "user-1",
		ArchetypeID: "gold",
		AssignedAt:  time.Now().UTC(),
	}

	err := s.Assignments.Create(context.Background(), "user-1", assignment)
	require.NoError(t, err)

	got, err := s.Assignments.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "gold", got.ArchetypeID)
	assert.Equal(t, "user-1", got.UserID)
}

func TestEntity_CreateAlreadyExists(t *testing.T) {
	s := setupTestStore(t)

	first := &domain.GeneAssignment{UserID: "user-1", ArchetypeID: "gold"}
	require.NoError(t, s.Assignments.Create(context.Background(), "user-1", first))

	second := &domain.GeneAssignment{UserID: "user-1", ArchetypeID: "shadow"}
	err := s.Assignments.Create(context.Background(), "user-1", second)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	// The first write survives.
	got, err := s.Assignments.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "gold", got.ArchetypeID)
}

func TestEntity_CreateConcurrentFirstWriterWins(t *testing.T) {
	s := setupTestStore(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := range writers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := &domain.GeneAssignment{UserID: "user-1", ArchetypeID: fmt.Sprintf("card-%d", i)}
			errs[i] = s.Assignments.Create(context.Background(), "user-1", a)
		}(i)
	}
	wg.Wait()

	// Exactly one write wins; Badger serializes conflicting updates so
	// losers see either ErrAlreadyExists or a txn conflict.
	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)

	_, err := s.Assignments.Get(context.Background(), "user-1")
	require.NoError(t, err)
}

func TestEntity_GetNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Profiles.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEntity_Update(t *testing.T) {
	s := setupTestStore(t)

	profile := &domain.GeneProfile{ID: "gene-1", Hometown: "北京", Age: 30}
	require.NoError(t, s.Profiles.Create(context.Background(), "gene-1", profile))

	profile.Age = 31
	require.NoError(t, s.Profiles.Update(context.Background(), "gene-1", profile))

	got, err := s.Profiles.Get(context.Background(), "gene-1")
	require.NoError(t, err)
	assert.Equal(t, 31, got.Age)
}

func TestEntity_UpdateNotFound(t *testing.T) {
	s := setupTestStore(t)

	profile := &domain.GeneProfile{ID: "gene-1"}
	err := s.Profiles.Update(context.Background(), "gene-1", profile)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEntity_DeleteIdempotent(t *testing.T) {
	s := setupTestStore(t)

	profile := &domain.GeneProfile{ID: "gene-1", Hometown: "上海"}
	require.NoError(t, s.Profiles.Create(context.Background(), "gene-1", profile))
	require.NoError(t, s.Profiles.Delete(context.Background(), "gene-1"))

	_, err := s.Profiles.Get(context.Background(), "gene-1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Second delete is a no-op.
	require.NoError(t, s.Profiles.Delete(context.Background(), "gene-1"))
}

func TestEntity_List(t *testing.T) {
	s := setupTestStore(t)

	for i := range 5 {
		id := fmt.Sprintf("gene-%d", i)
		p := &domain.GeneProfile{ID: id, Age: 20 + i}
		require.NoError(t, s.Profiles.Create(context.Background(), id, p))
	}

	var count int
	for p, err := range s.Profiles.List(context.Background()) {
		require.NoError(t, err)
		require.NotNil(t, p)
		count++
	}
	assert.Equal(t, 5, count)
}

func TestEntity_ListStopsOnCancel(t *testing.T) {
	s := setupTestStore(t)

	p := &domain.GeneProfile{ID: "gene-1"}
	require.NoError(t, s.Profiles.Create(context.Background(), "gene-1", p))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, err := range s.Profiles.List(ctx) {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
