package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type RegistrationRepository struct {
	base baseRepository[models.Registration]
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return newRegistrationRepository(newSession(db))
}

func newRegistrationRepository(sess *uowSession) *RegistrationRepository {
	return &RegistrationRepository{base: baseRepository[models.Registration]{sess: sess}}
}

func (r *RegistrationRepository) GetAll(ctx context.Context) ([]*entities.Registration, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id uint) (*entities.Registration, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *RegistrationRepository) GetByTournamentAndTeam(ctx context.Context, tournamentID, teamID uint) (*entities.Registration, error) {
	m, err := r.base.first(ctx, "tournament_id = ? AND team_id = ?", tournamentID, teamID)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *RegistrationRepository) ListByTournament(ctx context.Context, tournamentID uint) ([]*entities.Registration, error) {
	ms, err := r.base.find(ctx, "tournament_id = ?", tournamentID)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *RegistrationRepository) CountByStatus(ctx context.Context, tournamentID uint, status entities.RegistrationStatus) (int64, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.Model(&models.Registration{}).
		Where("tournament_id = ? AND status = ?", tournamentID, string(status)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListExpiredPending returns pending registrations created before the cutoff,
// oldest first, for the expiry job.
func (r *RegistrationRepository) ListExpiredPending(ctx context.Context, before time.Time, limit int) ([]*entities.Registration, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []models.Registration
	if err := db.
		Where("status = ? AND created_at < ?", string(entities.RegistrationStatusPending), before).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *RegistrationRepository) MarkExpired(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	db, err := r.base.db(ctx)
	if err != nil {
		return err
	}
	res := db.Model(&models.Registration{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.RegistrationStatusExpired),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return writeError(res.Error)
	}
	r.base.sess.record(res.RowsAffected)
	return nil
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.Registration) error {
	m := r.toModel(registration)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	registration.ID = m.ID
	registration.CreatedAt = m.CreatedAt
	registration.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uint, status entities.RegistrationStatus) error {
	return r.base.updateByID(ctx, id, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

func (r *RegistrationRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *RegistrationRepository) toEntities(ms []models.Registration) []*entities.Registration {
	items := make([]*entities.Registration, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *RegistrationRepository) toEntity(m *models.Registration) *entities.Registration {
	return &entities.Registration{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		TeamID:       m.TeamID,
		Status:       entities.RegistrationStatus(m.Status),
		Seed:         m.Seed,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *RegistrationRepository) toModel(e *entities.Registration) *models.Registration {
	return &models.Registration{
		ID:           e.ID,
		TournamentID: e.TournamentID,
		TeamID:       e.TeamID,
		Status:       string(e.Status),
		Seed:         e.Seed,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
