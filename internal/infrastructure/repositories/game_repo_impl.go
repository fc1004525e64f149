package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type GameRepository struct {
	base baseRepository[models.Game]
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return newGameRepository(newSession(db))
}

func newGameRepository(sess *uowSession) *GameRepository {
	return &GameRepository{base: baseRepository[models.Game]{sess: sess}}
}

func (r *GameRepository) GetAll(ctx context.Context) ([]*entities.Game, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *GameRepository) GetByID(ctx context.Context, id uint) (*entities.Game, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *GameRepository) GetBySlug(ctx context.Context, slug string) (*entities.Game, error) {
	m, err := r.base.first(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *GameRepository) ListActive(ctx context.Context) ([]*entities.Game, error) {
	ms, err := r.base.find(ctx, "is_active = ?", true)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *GameRepository) Create(ctx context.Context, game *entities.Game) error {
	m := r.toModel(game)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	game.ID = m.ID
	game.CreatedAt = m.CreatedAt
	game.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *GameRepository) Update(ctx context.Context, game *entities.Game) error {
	return r.base.updateByID(ctx, game.ID, map[string]interface{}{
		"name":       game.Name,
		"slug":       game.Slug,
		"genre":      game.Genre,
		"is_active":  game.IsActive,
		"updated_at": time.Now(),
	})
}

func (r *GameRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *GameRepository) toEntities(ms []models.Game) []*entities.Game {
	items := make([]*entities.Game, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *GameRepository) toEntity(m *models.Game) *entities.Game {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Game{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Genre:     m.Genre,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func (r *GameRepository) toModel(e *entities.Game) *models.Game {
	return &models.Game{
		ID:        e.ID,
		Name:      e.Name,
		Slug:      e.Slug,
		Genre:     e.Genre,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
