package repositories

import (
	"context"

	"arena.backend/internal/domain/entities"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]*entities.Team, error)
	GetByID(ctx context.Context, id uint) (*entities.Team, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Team, error)
	ListActive(ctx context.Context) ([]*entities.Team, error)
	TopRanked(ctx context.Context, limit int) ([]*entities.Team, error)
	Create(ctx context.Context, team *entities.Team) error
	Update(ctx context.Context, team *entities.Team) error
	// ApplyResult adds a win/draw/loss delta to the team's running record.
	// The read-modify-write is not atomic at the store level; concurrent
	// callers must be serialized by the surrounding transaction.
	ApplyResult(ctx context.Context, teamID uint, delta entities.ResultDelta) error
	Delete(ctx context.Context, id uint) error
}
