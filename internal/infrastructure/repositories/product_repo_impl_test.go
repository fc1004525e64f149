package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
)

func TestProductRepository_CRUDAndLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := &entities.Product{
		Name:       "Team Jersey",
		Slug:       "team-jersey",
		PriceCents: 4999,
		Stock:      10,
		IsActive:   true,
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetBySlug(ctx, "team-jersey")
	require.NoError(t, err)
	require.Equal(t, int64(4999), got.PriceCents)

	hidden := &entities.Product{Name: "Legacy Mug", Slug: "legacy-mug", PriceCents: 999, Stock: 0}
	require.NoError(t, repo.Create(ctx, hidden))

	stored, err := repo.GetByID(ctx, hidden.ID)
	require.NoError(t, err)
	require.False(t, stored.IsActive)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, p.ID, active[0].ID)

	p.PriceCents = 5999
	require.NoError(t, repo.Update(ctx, p))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(5999), got.PriceCents)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	db := newTestDB(t)
	seeded := seedProduct(t, db, "sticker-pack", 3)
	repo := NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AdjustStock(ctx, seeded.ID, -2))

	got, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)

	// Draining below zero is refused and leaves stock untouched.
	err = repo.AdjustStock(ctx, seeded.ID, -2)
	require.ErrorIs(t, err, domainerrors.ErrOutOfStock)

	got, err = repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Stock)

	// Restock path.
	require.NoError(t, repo.AdjustStock(ctx, seeded.ID, 5))
	got, err = repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 6, got.Stock)

	err = repo.AdjustStock(ctx, 9999, -1)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
