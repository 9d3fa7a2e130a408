package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/pkg/clock"
	"github.com/directory-microservice/internal/pkg/errors"
	"github.com/directory-microservice/internal/repository/memory"
)

var t0 = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newEntityRepo(clk clock.Clock) *memory.EntityRepository {
	return memory.NewEntityRepository(clk, zap.NewNop())
}

func TestEntityRepository_Create(t *testing.T) {
	clk := clock.NewFixed(t0)
	repo := newEntityRepo(clk)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{
		Type:  "cafe",
		Area:  "old-town",
		Title: "Corner Cafe",
		Tags:  []string{"coffee"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, t0, created.CreatedAt)
	assert.Equal(t, t0, created.UpdatedAt)
	assert.Nil(t, created.LastConfirmedAt)
	assert.Equal(t, domain.StatusActive, created.Status, "status defaults to active")

	second, err := repo.Create(ctx, domain.Entity{Type: "cafe", Area: "old-town", Title: "Other"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID, "ids are unique")
}

func TestEntityRepository_GetByID(t *testing.T) {
	repo := newEntityRepo(clock.NewFixed(t0))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{Type: "cafe", Area: "a", Title: "X"})
	require.NoError(t, err)

	t.Run("existing id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrEntityNotFound)
	})
}

func TestEntityRepository_Update(t *testing.T) {
	clk := clock.NewFixed(t0)
	repo := newEntityRepo(clk)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{
		Type:   "cafe",
		Area:   "old-town",
		Title:  "Corner Cafe",
		Rating: 4.2,
	})
	require.NoError(t, err)

	clk.Set(t0.Add(time.Hour))
	newTitle := "Corner Cafe & Bakery"
	updated, err := repo.Update(ctx, created.ID, domain.EntityUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "cafe", updated.Type, "untouched fields stay unchanged")
	assert.Equal(t, 4.2, updated.Rating, "untouched fields stay unchanged")
	assert.Equal(t, t0, updated.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt, "every mutation bumps updated_at")

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update(ctx, "missing", domain.EntityUpdate{Title: &newTitle})
		assert.ErrorIs(t, err, errors.ErrEntityNotFound)
	})
}

func TestEntityRepository_SoftDelete(t *testing.T) {
	clk := clock.NewFixed(t0)
	repo := newEntityRepo(clk)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{Type: "cafe", Area: "a", Title: "X"})
	require.NoError(t, err)

	clk.Set(t0.Add(time.Minute))
	archived, err := repo.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, archived.Status)
	assert.Equal(t, t0.Add(time.Minute), archived.UpdatedAt)

	// Re-archiving is a no-op update, not an error.
	clk.Set(t0.Add(2 * time.Minute))
	again, err := repo.SoftDelete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, again.Status)
	assert.Equal(t, t0.Add(2*time.Minute), again.UpdatedAt)

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.SoftDelete(ctx, "missing")
		assert.ErrorIs(t, err, errors.ErrEntityNotFound)
	})
}

func TestEntityRepository_ListSnapshot(t *testing.T) {
	clk := clock.NewFixed(t0)
	repo := newEntityRepo(clk)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{
		Type:  "cafe",
		Area:  "a",
		Title: "Before",
		Tags:  []string{"one"},
	})
	require.NoError(t, err)

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Mutate after the snapshot was taken.
	newTitle := "After"
	_, err = repo.Update(ctx, created.ID, domain.EntityUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Before", snapshot[0].Title, "snapshot is not a live view")

	// Mutating the snapshot must not leak into the store either.
	snapshot[0].Tags[0] = "mutated"
	fresh, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, fresh.Tags)
}

func TestEntityRepository_Confirm(t *testing.T) {
	clk := clock.NewFixed(t0)
	repo := newEntityRepo(clk)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Entity{Type: "cafe", Area: "a", Title: "X"})
	require.NoError(t, err)

	at := t0.Add(30 * time.Minute)
	updated, err := repo.Confirm(ctx, created.ID, at)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastConfirmedAt)
	assert.Equal(t, at, *got.LastConfirmedAt)
	assert.Equal(t, at, got.UpdatedAt)

	t.Run("unknown entity is not an error", func(t *testing.T) {
		updated, err := repo.Confirm(ctx, "missing", at)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestEntityRepository_LoadSeed(t *testing.T) {
	repo := newEntityRepo(clock.NewFixed(t0))

	path := writeSeedFile(t, `[
		{"title": "Seeded Cafe", "type": "cafe", "area": "old-town", "rating": 4.1},
		{"id": "fixed-id", "title": "Pinned", "type": "museum", "area": "center", "status": "unverified"}
	]`)

	count, err := repo.LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	snapshot, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	assert.NotEmpty(t, snapshot[0].ID, "missing ids are assigned")
	assert.Equal(t, domain.StatusActive, snapshot[0].Status)
	assert.Equal(t, t0, snapshot[0].CreatedAt)

	pinned, err := repo.GetByID(context.Background(), "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnverified, pinned.Status)
}
