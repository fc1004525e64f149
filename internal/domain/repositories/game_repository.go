package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type GameRepository interface {
	GetAll(ctx context.Context) ([]*entities.Game, error)
	GetByID(ctx context.Context, id uint) (*entities.Game, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Game, error)
	ListActive(ctx context.Context) ([]*entities.Game, error)
	Create(ctx context.Context, game *entities.Game) error
	Update(ctx context.Context, game *entities.Game) error
	Delete(ctx context.Context, id uint) error
}
