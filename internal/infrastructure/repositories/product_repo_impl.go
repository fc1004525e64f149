package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/infrastructure/models"
)

type ProductRepository struct {
	base baseRepository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return newProductRepository(newSession(db))
}

func newProductRepository(sess *uowSession) *ProductRepository {
	return &ProductRepository{base: baseRepository[models.Product]{sess: sess}}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*entities.Product, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*entities.Product, error) {
	m, err := r.base.first(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]*entities.Product, error) {
	ms, err := r.base.find(ctx, "is_active = ?", true)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := r.toModel(product)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	return r.base.updateByID(ctx, product.ID, map[string]interface{}{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description.Ptr(),
		"price_cents": product.PriceCents,
		"stock":       product.Stock,
		"is_active":   product.IsActive,
		"updated_at":  time.Now(),
	})
}

// AdjustStock applies delta to the stock counter, refusing to go negative.
// Read-modify-write; racing callers must share a transaction.
func (r *ProductRepository) AdjustStock(ctx context.Context, id uint, delta int) error {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return err
	}
	next := m.Stock + delta
	if next < 0 {
		return fmt.Errorf("%w: product %d has %d in stock", domainerrors.ErrOutOfStock, id, m.Stock)
	}
	return r.base.updateByID(ctx, id, map[string]interface{}{
		"stock":      next,
		"updated_at": time.Now(),
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *ProductRepository) toEntities(ms []models.Product) []*entities.Product {
	items := make([]*entities.Product, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: null.StringFromPtr(m.Description),
		PriceCents:  m.PriceCents,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

func (r *ProductRepository) toModel(e *entities.Product) *models.Product {
	return &models.Product{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description.Ptr(),
		PriceCents:  e.PriceCents,
		Stock:       e.Stock,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
