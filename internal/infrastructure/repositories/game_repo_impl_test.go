package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
)

func TestGameRepository_CRUDAndLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game := &entities.Game{Name: "Counter-Strike 2", Slug: "counter-strike-2", Genre: "fps", IsActive: true}
	require.NoError(t, repo.Create(ctx, game))
	require.NotZero(t, game.ID)

	got, err := repo.GetBySlug(ctx, "counter-strike-2")
	require.NoError(t, err)
	require.Equal(t, "fps", got.Genre)

	retired := &entities.Game{Name: "CS:GO", Slug: "csgo", Genre: "fps"}
	require.NoError(t, repo.Create(ctx, retired))

	stored, err := repo.GetByID(ctx, retired.ID)
	require.NoError(t, err)
	require.False(t, stored.IsActive)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, game.ID, active[0].ID)

	game.Genre = "tactical-fps"
	require.NoError(t, repo.Update(ctx, game))
	got, err = repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	require.Equal(t, "tactical-fps", got.Genre)

	err = repo.Create(ctx, &entities.Game{Name: "Clone", Slug: "counter-strike-2", IsActive: true})
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}
