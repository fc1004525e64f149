package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type MatchRepository struct {
	base baseRepository[models.Match]
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return newMatchRepository(newSession(db))
}

func newMatchRepository(sess *uowSession) *MatchRepository {
	return &MatchRepository{base: baseRepository[models.Match]{sess: sess}}
}

func (r *MatchRepository) GetAll(ctx context.Context) ([]*entities.Match, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id uint) (*entities.Match, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID uint) ([]*entities.Match, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []models.Match
	if err := db.
		Where("tournament_id = ?", tournamentID).
		Order("round ASC, scheduled_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *MatchRepository) ListByStatus(ctx context.Context, status entities.MatchStatus) ([]*entities.Match, error) {
	ms, err := r.base.find(ctx, "status = ?", string(status))
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *MatchRepository) Create(ctx context.Context, match *entities.Match) error {
	m := r.toModel(match)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	match.ID = m.ID
	match.CreatedAt = m.CreatedAt
	match.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, match *entities.Match) error {
	return r.base.updateByID(ctx, match.ID, map[string]interface{}{
		"round":        match.Round,
		"home_team_id": match.HomeTeamID,
		"away_team_id": match.AwayTeamID,
		"home_score":   match.HomeScore.Ptr(),
		"away_score":   match.AwayScore.Ptr(),
		"status":       string(match.Status),
		"scheduled_at": match.ScheduledAt,
		"updated_at":   time.Now(),
	})
}

func (r *MatchRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *MatchRepository) toEntities(ms []models.Match) []*entities.Match {
	items := make([]*entities.Match, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *MatchRepository) toEntity(m *models.Match) *entities.Match {
	return &entities.Match{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Round:        m.Round,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeScore:    null.Int64FromPtr(m.HomeScore),
		AwayScore:    null.Int64FromPtr(m.AwayScore),
		Status:       entities.MatchStatus(m.Status),
		ScheduledAt:  m.ScheduledAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *MatchRepository) toModel(e *entities.Match) *models.Match {
	return &models.Match{
		ID:           e.ID,
		TournamentID: e.TournamentID,
		Round:        e.Round,
		HomeTeamID:   e.HomeTeamID,
		AwayTeamID:   e.AwayTeamID,
		HomeScore:    e.HomeScore.Ptr(),
		AwayScore:    e.AwayScore.Ptr(),
		Status:       string(e.Status),
		ScheduledAt:  e.ScheduledAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
