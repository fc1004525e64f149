package repositories

import (
	"context"
	"time"

	"arena.backend/internal/domain/entities"
)

type RegistrationRepository interface {
	GetAll(ctx context.Context) ([]*entities.Registration, error)
	GetByID(ctx context.Context, id uint) (*entities.Registration, error)
	GetByTournamentAndTeam(ctx context.Context, tournamentID, teamID uint) (*entities.Registration, error)
	ListByTournament(ctx context.Context, tournamentID uint) ([]*entities.Registration, error)
	CountByStatus(ctx context.Context, tournamentID uint, status entities.RegistrationStatus) (int64, error)
	ListExpiredPending(ctx context.Context, before time.Time, limit int) ([]*entities.Registration, error)
	MarkExpired(ctx context.Context, ids []uint) error
	Create(ctx context.Context, registration *entities.Registration) error
	UpdateStatus(ctx context.Context, id uint, status entities.RegistrationStatus) error
	Delete(ctx context.Context, id uint) error
}
