package repositories

import (
	"context"

	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type AchievementRepository struct {
	base baseRepository[models.Achievement]
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return newAchievementRepository(newSession(db))
}

func newAchievementRepository(sess *uowSession) *AchievementRepository {
	return &AchievementRepository{base: baseRepository[models.Achievement]{sess: sess}}
}

func (r *AchievementRepository) GetAll(ctx context.Context) ([]*entities.Achievement, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *AchievementRepository) GetByID(ctx context.Context, id uint) (*entities.Achievement, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *AchievementRepository) ListByPlayer(ctx context.Context, playerID uint) ([]*entities.Achievement, error) {
	ms, err := r.base.find(ctx, "player_id = ?", playerID)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *entities.Achievement) error {
	m := r.toModel(achievement)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	achievement.ID = m.ID
	achievement.CreatedAt = m.CreatedAt
	return nil
}

func (r *AchievementRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *AchievementRepository) toEntities(ms []models.Achievement) []*entities.Achievement {
	items := make([]*entities.Achievement, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *AchievementRepository) toEntity(m *models.Achievement) *entities.Achievement {
	return &entities.Achievement{
		ID:          m.ID,
		PlayerID:    m.PlayerID,
		Title:       m.Title,
		Description: m.Description,
		AwardedAt:   m.AwardedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *AchievementRepository) toModel(e *entities.Achievement) *models.Achievement {
	return &models.Achievement{
		ID:          e.ID,
		PlayerID:    e.PlayerID,
		Title:       e.Title,
		Description: e.Description,
		AwardedAt:   e.AwardedAt,
		CreatedAt:   e.CreatedAt,
	}
}
