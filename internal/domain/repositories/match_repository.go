package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type MatchRepository interface {
	GetAll(ctx context.Context) ([]*entities.Match, error)
	GetByID(ctx context.Context, id uint) (*entities.Match, error)
	ListByTournament(ctx context.Context, tournamentID uint) ([]*entities.Match, error)
	ListByStatus(ctx context.Context, status entities.MatchStatus) ([]*entities.Match, error)
	Create(ctx context.Context, match *entities.Match) error
	Update(ctx context.Context, match *entities.Match) error
	Delete(ctx context.Context, id uint) error
}
