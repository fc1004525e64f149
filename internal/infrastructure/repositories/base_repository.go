package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainerrors "arena.backend/internal/domain/errors"
)

// baseRepository is the generic CRUD gateway every entity repository embeds.
// M is the gorm model type; all operations go through the bound session so
// they participate in the unit of work's transaction.
type baseRepository[M any] struct {
	sess *uowSession
}

func (r *baseRepository[M]) db(ctx context.Context) (*gorm.DB, error) {
	return r.sess.handle(ctx)
}

func (r *baseRepository[M]) all(ctx context.Context) ([]M, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []M
	if err := db.Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *baseRepository[M]) byID(ctx context.Context, id uint) (*M, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var m M
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *baseRepository[M]) find(ctx context.Context, query interface{}, args ...interface{}) ([]M, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var ms []M
	if err := db.Where(query, args...).Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *baseRepository[M]) first(ctx context.Context, query interface{}, args ...interface{}) (*M, error) {
	db, err := r.db(ctx)
	if err != nil {
		return nil, err
	}
	var m M
	if err := db.Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *baseRepository[M]) create(ctx context.Context, m *M) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	res := db.Create(m)
	if res.Error != nil {
		return writeError(res.Error)
	}
	r.sess.record(res.RowsAffected)
	return nil
}

// updateByID fails with ErrNotFound when no row matches the identity.
func (r *baseRepository[M]) updateByID(ctx context.Context, id uint, changes map[string]interface{}) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	res := db.Model(new(M)).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return writeError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	r.sess.record(res.RowsAffected)
	return nil
}

// deleteByID is idempotent: deleting a missing identity is a no-op.
func (r *baseRepository[M]) deleteByID(ctx context.Context, id uint) error {
	db, err := r.db(ctx)
	if err != nil {
		return err
	}
	res := db.Delete(new(M), id)
	if res.Error != nil {
		return writeError(res.Error)
	}
	r.sess.record(res.RowsAffected)
	return nil
}

// writeError maps store-level rejections (unique/foreign-key violations) to
// the domain conflict error; everything else passes through unchanged.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", domainerrors.ErrConflict, err)
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %v", domainerrors.ErrConflict, err)
	}
	return err
}
