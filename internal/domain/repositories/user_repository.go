package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

// UserRepository defines persistence operations for accounts
type UserRepository interface {
	GetAll(ctx context.Context) ([]*entities.User, error)
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
}
