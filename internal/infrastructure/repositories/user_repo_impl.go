package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

// UserRepository implements account data operations
type UserRepository struct {
	base baseRepository[models.User]
}

// NewUserRepository creates a standalone user repository bound to db
func NewUserRepository(db *gorm.DB) *UserRepository {
	return newUserRepository(newSession(db))
}

func newUserRepository(sess *uowSession) *UserRepository {
	return &UserRepository{base: baseRepository[models.User]{sess: sess}}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	m, err := r.base.first(ctx, "email = ?", email)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	return r.base.updateByID(ctx, user.ID, map[string]interface{}{
		"email":      user.Email,
		"username":   user.Username,
		"role":       string(user.Role),
		"updated_at": time.Now(),
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.base.updateByID(ctx, id, map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *UserRepository) toEntities(ms []models.User) []*entities.User {
	items := make([]*entities.User, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entities.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func (r *UserRepository) toModel(e *entities.User) *models.User {
	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         string(e.Role),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
