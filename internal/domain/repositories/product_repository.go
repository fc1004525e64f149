package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]*entities.Product, error)
	GetByID(ctx context.Context, id uint) (*entities.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Product, error)
	ListActive(ctx context.Context) ([]*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) error
	Update(ctx context.Context, product *entities.Product) error
	// AdjustStock adds delta to the product's stock counter and fails with
	// ErrOutOfStock when the result would go negative.
	AdjustStock(ctx context.Context, id uint, delta int) error
	Delete(ctx context.Context, id uint) error
}
