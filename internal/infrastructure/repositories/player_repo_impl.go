package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type PlayerRepository struct {
	base baseRepository[models.Player]
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return newPlayerRepository(newSession(db))
}

func newPlayerRepository(sess *uowSession) *PlayerRepository {
	return &PlayerRepository{base: baseRepository[models.Player]{sess: sess}}
}

func (r *PlayerRepository) GetAll(ctx context.Context) ([]*entities.Player, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id uint) (*entities.Player, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *PlayerRepository) GetByUserID(ctx context.Context, userID uint) (*entities.Player, error) {
	m, err := r.base.first(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *PlayerRepository) GetByNickname(ctx context.Context, nickname string) (*entities.Player, error) {
	m, err := r.base.first(ctx, "nickname = ?", nickname)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID uint) ([]*entities.Player, error) {
	ms, err := r.base.find(ctx, "team_id = ?", teamID)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *PlayerRepository) Create(ctx context.Context, player *entities.Player) error {
	m := r.toModel(player)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	player.ID = m.ID
	player.CreatedAt = m.CreatedAt
	player.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *entities.Player) error {
	return r.base.updateByID(ctx, player.ID, map[string]interface{}{
		"nickname":   player.Nickname,
		"avatar_url": player.AvatarURL.Ptr(),
		"country":    player.Country.Ptr(),
		"team_id":    player.TeamID.Ptr(),
		"points":     player.Points,
		"updated_at": time.Now(),
	})
}

func (r *PlayerRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *PlayerRepository) toEntities(ms []models.Player) []*entities.Player {
	items := make([]*entities.Player, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *PlayerRepository) toEntity(m *models.Player) *entities.Player {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Player{
		ID:        m.ID,
		UserID:    m.UserID,
		Nickname:  m.Nickname,
		AvatarURL: null.StringFromPtr(m.AvatarURL),
		Country:   null.StringFromPtr(m.Country),
		TeamID:    null.UintFromPtr(m.TeamID),
		Points:    m.Points,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func (r *PlayerRepository) toModel(e *entities.Player) *models.Player {
	return &models.Player{
		ID:        e.ID,
		UserID:    e.UserID,
		Nickname:  e.Nickname,
		AvatarURL: e.AvatarURL.Ptr(),
		Country:   e.Country.Ptr(),
		TeamID:    e.TeamID.Ptr(),
		Points:    e.Points,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
