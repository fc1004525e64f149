package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
)

func TestMatchRepository_ScheduleAndReport(t *testing.T) {
	db := newTestDB(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", 16)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	repo := NewMatchRepository(db)
	ctx := context.Background()

	m := &entities.Match{
		TournamentID: tr.ID,
		Round:        1,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		Status:       entities.MatchStatusScheduled,
		ScheduledAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, m))
	require.NotZero(t, m.ID)

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.False(t, got.HomeScore.Valid)
	require.False(t, got.AwayScore.Valid)

	m.HomeScore = null.Int64From(16)
	m.AwayScore = null.Int64From(12)
	m.Status = entities.MatchStatusFinished
	require.NoError(t, repo.Update(ctx, m))

	got, err = repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, int64(16), got.HomeScore.Int64)
	require.Equal(t, int64(12), got.AwayScore.Int64)
	require.Equal(t, entities.MatchStatusFinished, got.Status)
}

func TestMatchRepository_ListByTournamentOrdering(t *testing.T) {
	db := newTestDB(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", 16)
	other := seedTournament(t, db, g.ID, "minor", 8)
	t1 := seedTeam(t, db, g.ID, "navi")
	t2 := seedTeam(t, db, g.ID, "spirit")
	repo := NewMatchRepository(db)
	ctx := context.Background()

	now := time.Now()
	mk := func(trID uint, round int, at time.Time) {
		require.NoError(t, repo.Create(ctx, &entities.Match{
			TournamentID: trID, Round: round, HomeTeamID: t1.ID, AwayTeamID: t2.ID,
			Status: entities.MatchStatusScheduled, ScheduledAt: at,
		}))
	}
	mk(tr.ID, 2, now.Add(3*time.Hour))
	mk(tr.ID, 1, now.Add(2*time.Hour))
	mk(tr.ID, 1, now.Add(1*time.Hour))
	mk(other.ID, 1, now)

	ms, err := repo.ListByTournament(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	require.Equal(t, 1, ms[0].Round)
	require.True(t, ms[0].ScheduledAt.Before(ms[1].ScheduledAt))
	require.Equal(t, 2, ms[2].Round)

	scheduled, err := repo.ListByStatus(ctx, entities.MatchStatusScheduled)
	require.NoError(t, err)
	require.Len(t, scheduled, 4)
}

func TestMatchRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	repo := NewMatchRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Match{ID: 42, Status: entities.MatchStatusFinished})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
