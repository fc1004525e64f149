package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/infrastructure/models"
)

func seedMatch(t *testing.T, db *gorm.DB, tournamentID, homeID, awayID uint, status string) *models.Match {
	t.Helper()
	m := &models.Match{
		TournamentID: tournamentID,
		Round:        1,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		Status:       status,
		ScheduledAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestMatchUsecase_ScheduleMatch(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	seedRegistration(t, db, tr.ID, home.ID, "CONFIRMED")
	seedRegistration(t, db, tr.ID, away.ID, "CONFIRMED")
	uc := NewMatchUsecase(factory)
	ctx := context.Background()

	match, err := uc.ScheduleMatch(ctx, tr.ID, &entities.ScheduleMatchInput{
		Round: 1, HomeTeamID: home.ID, AwayTeamID: away.ID, ScheduledAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotZero(t, match.ID)
	require.Equal(t, entities.MatchStatusScheduled, match.Status)
}

func TestMatchUsecase_ScheduleMatchRejections(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	uc := NewMatchUsecase(factory)
	ctx := context.Background()
	in := func(h, a uint) *entities.ScheduleMatchInput {
		return &entities.ScheduleMatchInput{Round: 1, HomeTeamID: h, AwayTeamID: a, ScheduledAt: time.Now().Add(time.Hour)}
	}

	live := seedTournament(t, db, g.ID, "live-cup", "LIVE", 8)
	seedRegistration(t, db, live.ID, home.ID, "CONFIRMED")
	seedRegistration(t, db, live.ID, away.ID, "PENDING")

	// A team cannot play itself.
	_, err := uc.ScheduleMatch(ctx, live.ID, in(home.ID, home.ID))
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	// Unconfirmed entrant.
	_, err = uc.ScheduleMatch(ctx, live.ID, in(home.ID, away.ID))
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	// Tournament not live.
	draft := seedTournament(t, db, g.ID, "draft-cup", "REGISTRATION", 8)
	_, err = uc.ScheduleMatch(ctx, draft.ID, in(home.ID, away.ID))
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	// Team never entered at all.
	ghost := seedTeam(t, db, g.ID, "ghost")
	_, err = uc.ScheduleMatch(ctx, live.ID, in(home.ID, ghost.ID))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Table("matches").Count(&count).Error)
	require.Zero(t, count)
}

func TestMatchUsecase_ReportResultAppliesDeltas(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	m := seedMatch(t, db, tr.ID, home.ID, away.ID, "SCHEDULED")
	uc := NewMatchUsecase(factory)
	ctx := context.Background()

	got, err := uc.ReportResult(ctx, m.ID, &entities.ReportResultInput{HomeScore: 16, AwayScore: 9})
	require.NoError(t, err)
	require.Equal(t, entities.MatchStatusFinished, got.Status)
	require.Equal(t, int64(16), got.HomeScore.Int64)
	require.Equal(t, int64(9), got.AwayScore.Int64)

	var homeRow, awayRow models.Team
	require.NoError(t, db.First(&homeRow, home.ID).Error)
	require.NoError(t, db.First(&awayRow, away.ID).Error)
	require.Equal(t, 1, homeRow.Wins)
	require.Equal(t, 3, homeRow.Points)
	require.Equal(t, 1, awayRow.Losses)
	require.Equal(t, 0, awayRow.Points)

	// The decided match cannot be reported again.
	_, err = uc.ReportResult(ctx, m.ID, &entities.ReportResultInput{HomeScore: 1, AwayScore: 1})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestMatchUsecase_ReportResultDraw(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	m := seedMatch(t, db, tr.ID, home.ID, away.ID, "SCHEDULED")
	uc := NewMatchUsecase(factory)

	_, err := uc.ReportResult(context.Background(), m.ID, &entities.ReportResultInput{HomeScore: 12, AwayScore: 12})
	require.NoError(t, err)

	var homeRow, awayRow models.Team
	require.NoError(t, db.First(&homeRow, home.ID).Error)
	require.NoError(t, db.First(&awayRow, away.ID).Error)
	require.Equal(t, 1, homeRow.Draws)
	require.Equal(t, 1, homeRow.Points)
	require.Equal(t, 1, awayRow.Draws)
	require.Equal(t, 1, awayRow.Points)
}

func TestMatchUsecase_ReportResultRollsBackOnMissingTeam(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	m := seedMatch(t, db, tr.ID, home.ID, away.ID, "SCHEDULED")
	require.NoError(t, db.Unscoped().Delete(&models.Team{}, away.ID).Error)
	uc := NewMatchUsecase(factory)

	_, err := uc.ReportResult(context.Background(), m.ID, &entities.ReportResultInput{HomeScore: 16, AwayScore: 2})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Neither the score nor the winner's record survives the rollback.
	var row models.Match
	require.NoError(t, db.First(&row, m.ID).Error)
	require.Equal(t, "SCHEDULED", row.Status)
	require.Nil(t, row.HomeScore)

	var homeRow models.Team
	require.NoError(t, db.First(&homeRow, home.ID).Error)
	require.Zero(t, homeRow.Wins)
	require.Zero(t, homeRow.Points)
}

func TestMatchUsecase_CancelMatch(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	m := seedMatch(t, db, tr.ID, home.ID, away.ID, "SCHEDULED")
	uc := NewMatchUsecase(factory)
	ctx := context.Background()

	require.NoError(t, uc.CancelMatch(ctx, m.ID))

	err := uc.CancelMatch(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestMatchUsecase_ListByTournament(t *testing.T) {
	factory, db := newTestFactory(t)
	g := seedGame(t, db, "cs2")
	tr := seedTournament(t, db, g.ID, "major", "LIVE", 8)
	home := seedTeam(t, db, g.ID, "navi")
	away := seedTeam(t, db, g.ID, "spirit")
	seedMatch(t, db, tr.ID, home.ID, away.ID, "SCHEDULED")
	seedMatch(t, db, tr.ID, away.ID, home.ID, "SCHEDULED")
	uc := NewMatchUsecase(factory)

	matches, err := uc.ListByTournament(context.Background(), tr.ID)
	require.NoError(t, err)
	require.Len(t, matches, 2)
}
