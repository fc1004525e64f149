package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
)

func TestNewsRepository_PublishFlow(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "mod@example.com", "mod")
	repo := NewNewsRepository(db)
	ctx := context.Background()

	draft := &entities.News{
		Title:    "Roster Shuffle Incoming",
		Slug:     "roster-shuffle-incoming",
		Body:     "Sources say...",
		AuthorID: author.ID,
	}
	require.NoError(t, repo.Create(ctx, draft))

	published, total, err := repo.ListPublished(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, published)
	require.Zero(t, total)

	now := time.Now()
	draft.IsPublished = true
	draft.PublishedAt = &now
	require.NoError(t, repo.Update(ctx, draft))

	published, total, err = repo.ListPublished(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.EqualValues(t, 1, total)
	require.NotNil(t, published[0].PublishedAt)

	got, err := repo.GetBySlug(ctx, "roster-shuffle-incoming")
	require.NoError(t, err)
	require.Equal(t, draft.ID, got.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
