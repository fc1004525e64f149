package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type AchievementRepository interface {
	GetAll(ctx context.Context) ([]*entities.Achievement, error)
	GetByID(ctx context.Context, id uint) (*entities.Achievement, error)
	ListByPlayer(ctx context.Context, playerID uint) ([]*entities.Achievement, error)
	Create(ctx context.Context, achievement *entities.Achievement) error
	Delete(ctx context.Context, id uint) error
}
