package repositories

import (
	"context"
	"time"

	"arena.backend/internal/domain/entities"
)

type TournamentRepository interface {
	GetAll(ctx context.Context) ([]*entities.Tournament, error)
	GetByID(ctx context.Context, id uint) (*entities.Tournament, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Tournament, error)
	ListByStatus(ctx context.Context, status entities.TournamentStatus) ([]*entities.Tournament, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]*entities.Tournament, error)
	Create(ctx context.Context, tournament *entities.Tournament) error
	Update(ctx context.Context, tournament *entities.Tournament) error
	UpdateStatus(ctx context.Context, id uint, status entities.TournamentStatus) error
	Delete(ctx context.Context, id uint) error
}
