package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type NewsRepository interface {
	GetAll(ctx context.Context) ([]*entities.News, error)
	GetByID(ctx context.Context, id uint) (*entities.News, error)
	GetBySlug(ctx context.Context, slug string) (*entities.News, error)
	ListPublished(ctx context.Context, offset, limit int) ([]*entities.News, int64, error)
	Create(ctx context.Context, article *entities.News) error
	Update(ctx context.Context, article *entities.News) error
	Delete(ctx context.Context, id uint) error
}
