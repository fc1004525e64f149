package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/pkg/utils"
)

// TournamentUsecase handles tournament lifecycle business logic
type TournamentUsecase struct {
	uowFactory repositories.UnitOfWorkFactory
}

// NewTournamentUsecase creates a new tournament usecase
func NewTournamentUsecase(uowFactory repositories.UnitOfWorkFactory) *TournamentUsecase {
	return &TournamentUsecase{uowFactory: uowFactory}
}

// CreateTournament creates a DRAFT tournament for an existing game.
func (u *TournamentUsecase) CreateTournament(ctx context.Context, input *entities.CreateTournamentInput) (*entities.Tournament, error) {
	if !input.RegistrationBy.Before(input.StartsAt) {
		return nil, domainerrors.NewError("registration deadline must precede the start", domainerrors.ErrInvalidInput)
	}

	uow := u.uowFactory.New()
	defer uow.Close()

	if _, err := uow.Games().GetByID(ctx, input.GameID); err != nil {
		return nil, err
	}

	tournament := &entities.Tournament{
		Title:          input.Title,
		Slug:           utils.Slugify(input.Title),
		GameID:         input.GameID,
		Status:         entities.TournamentStatusDraft,
		MaxTeams:       input.MaxTeams,
		PrizePool:      null.NewString(input.PrizePool, input.PrizePool != ""),
		Description:    null.NewString(input.Description, input.Description != ""),
		RegistrationBy: input.RegistrationBy,
		StartsAt:       input.StartsAt,
	}

	if err := uow.Tournaments().Create(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// OpenRegistration moves a DRAFT tournament into REGISTRATION.
func (u *TournamentUsecase) OpenRegistration(ctx context.Context, tournamentID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	tournament, err := uow.Tournaments().GetByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if tournament.Status != entities.TournamentStatusDraft {
		return domainerrors.NewError("only draft tournaments can open registration", domainerrors.ErrInvalidInput)
	}
	return uow.Tournaments().UpdateStatus(ctx, tournamentID, entities.TournamentStatusRegistration)
}

// RegisterTeam enters a team into a tournament. The capacity check and the
// registration insert share one transaction so two racing entries cannot
// both squeeze past the limit.
func (u *TournamentUsecase) RegisterTeam(ctx context.Context, tournamentID, teamID uint) (*entities.Registration, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	var registration *entities.Registration
	err := uow.Execute(ctx, func(ctx context.Context) error {
		tournament, err := uow.Tournaments().GetByID(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament.Status != entities.TournamentStatusRegistration {
			return domainerrors.ErrRegistrationClosed
		}
		if time.Now().After(tournament.RegistrationBy) {
			return domainerrors.ErrRegistrationClosed
		}

		team, err := uow.Teams().GetByID(ctx, teamID)
		if err != nil {
			return err
		}
		if team.GameID != tournament.GameID {
			return domainerrors.NewError("team plays a different game", domainerrors.ErrInvalidInput)
		}

		_, err = uow.Registrations().GetByTournamentAndTeam(ctx, tournamentID, teamID)
		if err == nil {
			return domainerrors.NewError("team already registered", domainerrors.ErrAlreadyExists)
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		taken, err := uow.Registrations().CountByStatus(ctx, tournamentID, entities.RegistrationStatusConfirmed)
		if err != nil {
			return err
		}
		pending, err := uow.Registrations().CountByStatus(ctx, tournamentID, entities.RegistrationStatusPending)
		if err != nil {
			return err
		}
		if taken+pending >= int64(tournament.MaxTeams) {
			return domainerrors.ErrTournamentFull
		}

		registration = &entities.Registration{
			TournamentID: tournamentID,
			TeamID:       teamID,
			Status:       entities.RegistrationStatusPending,
		}
		return uow.Registrations().Create(ctx, registration)
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

// ConfirmRegistration promotes a pending registration.
func (u *TournamentUsecase) ConfirmRegistration(ctx context.Context, registrationID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	registration, err := uow.Registrations().GetByID(ctx, registrationID)
	if err != nil {
		return err
	}
	if registration.Status != entities.RegistrationStatusPending {
		return domainerrors.NewError("registration is not pending", domainerrors.ErrInvalidInput)
	}
	return uow.Registrations().UpdateStatus(ctx, registrationID, entities.RegistrationStatusConfirmed)
}

// CancelRegistration withdraws a team before the tournament goes live.
func (u *TournamentUsecase) CancelRegistration(ctx context.Context, registrationID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	registration, err := uow.Registrations().GetByID(ctx, registrationID)
	if err != nil {
		return err
	}

	tournament, err := uow.Tournaments().GetByID(ctx, registration.TournamentID)
	if err != nil {
		return err
	}
	if tournament.Status == entities.TournamentStatusLive || tournament.Status == entities.TournamentStatusFinished {
		return domainerrors.NewError("tournament already started", domainerrors.ErrInvalidInput)
	}

	return uow.Registrations().UpdateStatus(ctx, registrationID, entities.RegistrationStatusCancelled)
}

// StartTournament moves a tournament with enough confirmed teams to LIVE.
func (u *TournamentUsecase) StartTournament(ctx context.Context, tournamentID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Execute(ctx, func(ctx context.Context) error {
		tournament, err := uow.Tournaments().GetByID(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament.Status != entities.TournamentStatusRegistration {
			return domainerrors.NewError("tournament is not in registration", domainerrors.ErrInvalidInput)
		}

		confirmed, err := uow.Registrations().CountByStatus(ctx, tournamentID, entities.RegistrationStatusConfirmed)
		if err != nil {
			return err
		}
		if confirmed < 2 {
			return domainerrors.NewError("at least two confirmed teams required", domainerrors.ErrInvalidInput)
		}

		return uow.Tournaments().UpdateStatus(ctx, tournamentID, entities.TournamentStatusLive)
	})
}

// FinalizeTournament closes a LIVE tournament once every match is decided.
func (u *TournamentUsecase) FinalizeTournament(ctx context.Context, tournamentID uint) error {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Execute(ctx, func(ctx context.Context) error {
		tournament, err := uow.Tournaments().GetByID(ctx, tournamentID)
		if err != nil {
			return err
		}
		if tournament.Status != entities.TournamentStatusLive {
			return domainerrors.NewError("tournament is not live", domainerrors.ErrInvalidInput)
		}

		matches, err := uow.Matches().ListByTournament(ctx, tournamentID)
		if err != nil {
			return err
		}
		for _, m := range matches {
			if m.Status == entities.MatchStatusScheduled {
				return domainerrors.NewError("matches still scheduled", domainerrors.ErrInvalidInput)
			}
		}

		return uow.Tournaments().UpdateStatus(ctx, tournamentID, entities.TournamentStatusFinished)
	})
}

// GetBySlug fetches a tournament with its registrations.
func (u *TournamentUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Tournament, []*entities.Registration, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	tournament, err := uow.Tournaments().GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	registrations, err := uow.Registrations().ListByTournament(ctx, tournament.ID)
	if err != nil {
		return nil, nil, err
	}

	return tournament, registrations, nil
}

// ListUpcoming returns tournaments that have not started yet.
func (u *TournamentUsecase) ListUpcoming(ctx context.Context) ([]*entities.Tournament, error) {
	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Tournaments().ListUpcoming(ctx, time.Now())
}

// Leaderboard returns the best-ranked active teams.
func (u *TournamentUsecase) Leaderboard(ctx context.Context, limit int) ([]*entities.Team, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	uow := u.uowFactory.New()
	defer uow.Close()

	return uow.Teams().TopRanked(ctx, limit)
}
