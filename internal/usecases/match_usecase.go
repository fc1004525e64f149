package usecases

import (
	"context"

	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
)

// MatchUsecase handles fixture scheduling and result reporting
type MatchUsecase struct {
	uowFactory repositories.UnitOfWorkFactory
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(uowFactory repositories.UnitOfWorkFactory) *MatchUsecase {
	return &MatchUsecase{uowFactory: uowFactory}
}

// ScheduleMatch creates a fixture between two confirmed entrants of a live
// tournament.
func (u *MatchUsecase) ScheduleMatch(ctx context.Context, tournamentID uint, input *entities.ScheduleMatchInput) (*entities.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, domainerrors.NewError("a team cannot play itself", domainerrors.ErrInvalidInput)
	}

	uow := u.uowFactory.New()
	defer uow.Close()

	var match *entities.Match
	err := uow.Execute(ctx, func(ctx context.Context) error {
		tournament, err := uow.Tournaments().GetByID(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament.Status != entities.TournamentStatusLive {
			return domainerrors.NewError("tournament is not live", domainerrors.ErrInvalidInput)
		}

		for _, teamID := range []uint{input.HomeTeamID, input.AwayTeamID} {
			registration, err := uow.Registrations().GetByTournamentAndTeam(ctx, tournamentID, teamID)
			if err != nil {
				return err
			}
			if registration.Status != entities.RegistrationStatusConfirmed {
				return domainerrors.NewError("team entry is not confirmed", domainerrors.ErrInvalidInput)
			}
		}

		match = &entities.Match{
			TournamentID: tournamentID,
			Round:        input.Round,
			HomeTeamID:   input.HomeTeamID,
			AwayTeamID:   input.AwayTeamID,
			Status:       entities.MatchStatusScheduled,
			ScheduledAt:  input.ScheduledAt,
		}
		return uow.Matches().Create(ctx, match)
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ReportResult stores the final score and applies win/draw/loss deltas to
// both teams' running records in the same transaction, so a failure on
// either side leaves the match unreported.
func (u *MatchUsecase) ReportResult(ctx context.Context, matchID uint, input *entities.ReportResultInput) (*entities.Match, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	var match *entities.Match
	err := uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		match, err = uow.Matches().GetByID(ctx, matchID)
		if err != nil {
			return err
		}
		if match.Status != entities.MatchStatusScheduled {
			return domainerrors.NewError("match already decided", domainerrors.ErrInvalidInput)
		}

		match.HomeScore = null.Int64From(int64(input.HomeScore))
		match.AwayScore = null.Int64From(int64(input.AwayScore))
		match.Status = entities.MatchStatusFinished
		if err := uow.Matches().Update(ctx, match); err != nil {
			return err
		}

		homeDelta, awayDelta := resultDeltas(input.HomeScore, input.AwayScore)
		if err := uow.Teams().ApplyResult(ctx, match.HomeTeamID, homeDelta); err != nil {
			return err
		}
		return uow.Teams().ApplyResult(ctx, match.AwayTeamID, awayDelta)
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// CancelMatch voids a scheduled fixture.
func (u *MatchUsecase) CancelMatch(ctx context.Context, matchID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	match, err := uow.Matches().GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.Status != entities.MatchStatusScheduled {
		return domainerrors.NewError("only scheduled matches can be cancelled", domainerrors.ErrInvalidInput)
	}

	match.Status = entities.MatchStatusCancelled
	return uow.Matches().Update(ctx, match)
}

// ListByTournament returns a tournament's fixtures in bracket order.
func (u *MatchUsecase) ListByTournament(ctx context.Context, tournamentID uint) ([]*entities.Match, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Matches().ListByTournament(ctx, tournamentID)
}

// ListByTournamentSlug resolves a tournament by slug and returns its fixtures.
func (u *MatchUsecase) ListByTournamentSlug(ctx context.Context, slug string) ([]*entities.Match, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	tournament, err := uow.Tournaments().GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uow.Matches().ListByTournament(ctx, tournament.ID)
}

// resultDeltas maps a final score to the standard 3/1/0 points scheme.
func resultDeltas(homeScore, awayScore int) (home, away entities.ResultDelta) {
	switch {
	case homeScore > awayScore:
		home = entities.ResultDelta{Wins: 1, Points: 3}
		away = entities.ResultDelta{Losses: 1}
	case homeScore < awayScore:
		home = entities.ResultDelta{Losses: 1}
		away = entities.ResultDelta{Wins: 1, Points: 3}
	default:
		home = entities.ResultDelta{Draws: 1, Points: 1}
		away = entities.ResultDelta{Draws: 1, Points: 1}
	}
	return home, away
}
