package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	base baseRepository[models.Team]
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return newTeamRepository(newSession(db))
}

func newTeamRepository(sess *uowSession) *TeamRepository {
	return &TeamRepository{base: baseRepository[models.Team]{sess: sess}}
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]*entities.Team, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*entities.Team, error) {
	m, err := r.base.first(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TeamRepository) ListActive(ctx context.Context) ([]*entities.Team, error) {
	ms, err := r.base.find(ctx, "is_active = ?", true)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TeamRepository) TopRanked(ctx context.Context, limit int) ([]*entities.Team, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []models.Team
	if err := db.
		Where("is_active = ?", true).
		Order("points DESC, wins DESC, name ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := r.toModel(team)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	return r.base.updateByID(ctx, team.ID, map[string]interface{}{
		"name":       team.Name,
		"slug":       team.Slug,
		"logo_url":   team.LogoURL.Ptr(),
		"is_active":  team.IsActive,
		"updated_at": time.Now(),
	})
}

// ApplyResult is a read-modify-write of the team's counters. It is not an
// atomic increment at the store level; callers racing on the same team must
// be serialized by the surrounding transaction.
func (r *TeamRepository) ApplyResult(ctx context.Context, teamID uint, delta entities.ResultDelta) error {
	m, err := r.base.byID(ctx, teamID)
	if err != nil {
		return err
	}
	return r.base.updateByID(ctx, teamID, map[string]interface{}{
		"wins":       m.Wins + delta.Wins,
		"draws":      m.Draws + delta.Draws,
		"losses":     m.Losses + delta.Losses,
		"points":     m.Points + delta.Points,
		"updated_at": time.Now(),
	})
}

func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *TeamRepository) toEntities(ms []models.Team) []*entities.Team {
	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Team{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		GameID:    m.GameID,
		LogoURL:   null.StringFromPtr(m.LogoURL),
		Wins:      m.Wins,
		Draws:     m.Draws,
		Losses:    m.Losses,
		Points:    m.Points,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:        e.ID,
		Name:      e.Name,
		Slug:      e.Slug,
		GameID:    e.GameID,
		LogoURL:   e.LogoURL.Ptr(),
		Wins:      e.Wins,
		Draws:     e.Draws,
		Losses:    e.Losses,
		Points:    e.Points,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
