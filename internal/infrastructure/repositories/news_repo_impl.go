package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
)

type NewsRepository struct {
	base baseRepository[models.News]
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return newNewsRepository(newSession(db))
}

func newNewsRepository(sess *uowSession) *NewsRepository {
	return &NewsRepository{base: baseRepository[models.News]{sess: sess}}
}

func (r *NewsRepository) GetAll(ctx context.Context) ([]*entities.News, error) {
	ms, err := r.base.all(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id uint) (*entities.News, error) {
	m, err := r.base.byID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*entities.News, error) {
	m, err := r.base.first(ctx, "slug = ?", slug)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// ListPublished returns a page of published articles, newest first, along
// with the total published count. A limit of zero disables paging.
func (r *NewsRepository) ListPublished(ctx context.Context, offset, limit int) ([]*entities.News, int64, error) {
	db, err := r.base.db(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Model(&models.News{}).
		Where("is_published = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.
		Where("is_published = ?", true).
		Order("published_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	var ms []models.News
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

func (r *NewsRepository) Create(ctx context.Context, article *entities.News) error {
	m := r.toModel(article)
	if err := r.base.create(ctx, m); err != nil {
		return err
	}
	article.ID = m.ID
	article.CreatedAt = m.CreatedAt
	article.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *NewsRepository) Update(ctx context.Context, article *entities.News) error {
	return r.base.updateByID(ctx, article.ID, map[string]interface{}{
		"title":        article.Title,
		"slug":         article.Slug,
		"body":         article.Body,
		"is_published": article.IsPublished,
		"published_at": article.PublishedAt,
		"updated_at":   time.Now(),
	})
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	return r.base.deleteByID(ctx, id)
}

func (r *NewsRepository) toEntities(ms []models.News) []*entities.News {
	items := make([]*entities.News, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *NewsRepository) toEntity(m *models.News) *entities.News {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.News{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Body:        m.Body,
		AuthorID:    m.AuthorID,
		IsPublished: m.IsPublished,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

func (r *NewsRepository) toModel(e *entities.News) *models.News {
	return &models.News{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Body:        e.Body,
		AuthorID:    e.AuthorID,
		IsPublished: e.IsPublished,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
