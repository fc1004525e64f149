package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type PlayerRepository interface {
	GetAll(ctx context.Context) ([]*entities.Player, error)
	GetByID(ctx context.Context, id uint) (*entities.Player, error)
	GetByUserID(ctx context.Context, userID uint) (*entities.Player, error)
	GetByNickname(ctx context.Context, nickname string) (*entities.Player, error)
	ListByTeam(ctx context.Context, teamID uint) ([]*entities.Player, error)
	Create(ctx context.Context, player *entities.Player) error
	Update(ctx context.Context, player *entities.Player) error
	Delete(ctx context.Context, id uint) error
}
