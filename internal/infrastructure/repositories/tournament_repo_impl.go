package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type TournamentRepository struct {
	base baseRepository[models.Tournament]
}

func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return newTournamentRepository(newSession(db))
}

func newTournamentRepository(sess *uowSession) *TournamentRepository {
	return &TournamentRepository{base: baseRepository[models.Tournament]{sess: sess}}
}

func (r *TournamentRepository) GetAll(ctx context.Context) ([]*entities.Tournament, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id uint) (*entities.Tournament, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TournamentRepository) GetBySlug(ctx context.Context, slug string) (*entities.Tournament, error) {
	m, err := r.base.first(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TournamentRepository) ListByStatus(ctx context.Context, status entities.TournamentStatus) ([]*entities.Tournament, error) {
	ms, err := r.base.find(ctx, "status = ?", string(status))
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TournamentRepository) ListUpcoming(ctx context.Context, after time.Time) ([]*entities.Tournament, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []models.Tournament
	if err := db.
		Where("starts_at > ? AND status IN ?", after, []string{
			string(entities.TournamentStatusRegistration),
			string(entities.TournamentStatusLive),
		}).
		Order("starts_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TournamentRepository) Create(ctx context.Context, tournament *entities.Tournament) error {
	m := r.toModel(tournament)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	tournament.ID = m.ID
	tournament.CreatedAt = m.CreatedAt
	tournament.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TournamentRepository) Update(ctx context.Context, tournament *entities.Tournament) error {
	return r.base.updateByID(ctx, tournament.ID, map[string]interface{}{
		"title":           tournament.Title,
		"slug":            tournament.Slug,
		"status":          string(tournament.Status),
		"max_teams":       tournament.MaxTeams,
		"prize_pool":      tournament.PrizePool.Ptr(),
		"description":     tournament.Description.Ptr(),
		"registration_by": tournament.RegistrationBy,
		"starts_at":       tournament.StartsAt,
		"ends_at":         tournament.EndsAt,
		"updated_at":      time.Now(),
	})
}

func (r *TournamentRepository) UpdateStatus(ctx context.Context, id uint, status entities.TournamentStatus) error {
	return r.base.updateByID(ctx, id, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

func (r *TournamentRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *TournamentRepository) toEntities(ms []models.Tournament) []*entities.Tournament {
	items := make([]*entities.Tournament, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *TournamentRepository) toEntity(m *models.Tournament) *entities.Tournament {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Tournament{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		GameID:         m.GameID,
		Status:         entities.TournamentStatus(m.Status),
		MaxTeams:       m.MaxTeams,
		PrizePool:      null.StringFromPtr(m.PrizePool),
		Description:    null.StringFromPtr(m.Description),
		RegistrationBy: m.RegistrationBy,
		StartsAt:       m.StartsAt,
		EndsAt:         m.EndsAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

func (r *TournamentRepository) toModel(e *entities.Tournament) *models.Tournament {
	return &models.Tournament{
		ID:             e.ID,
		Title:          e.Title,
		Slug:           e.Slug,
		GameID:         e.GameID,
		Status:         string(e.Status),
		MaxTeams:       e.MaxTeams,
		PrizePool:      e.PrizePool.Ptr(),
		Description:    e.Description.Ptr(),
		RegistrationBy: e.RegistrationBy,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
