package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/internal/interfaces/http/middleware"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/pkg/utils"
)

// NewsHandler serves editorial articles
type NewsHandler struct {
	uowFactory repositories.UnitOfWorkFactory
}

func NewNewsHandler(uowFactory repositories.UnitOfWorkFactory) *NewsHandler {
	return &NewsHandler{uowFactory: uowFactory}
}

// ListNews returns published articles, newest first, paginated.
// GET /api/v1/news?page=1&limit=20
func (h *NewsHandler) ListNews(c *gin.Context) {
	var query utils.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	query = utils.NormalizePageQuery(query.Page, query.Limit)

	uow := h.uowFactory.New()
	defer uow.Close()

	items, total, err := uow.News().ListPublished(c.Request.Context(), query.Offset(), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.NewPageMeta(total, query),
	})
}

// GetArticle returns one article by slug.
// GET /api/v1/news/:slug
func (h *NewsHandler) GetArticle(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	article, err := uow.News().GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"article": article})
}

// CreateArticle writes an article, optionally publishing it immediately.
// POST /api/v1/admin/news
func (h *NewsHandler) CreateArticle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.CreateNewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	article := &entities.News{
		Title:       input.Title,
		Slug:        utils.Slugify(input.Title),
		Body:        input.Body,
		AuthorID:    userID,
		IsPublished: input.Publish,
	}
	if input.Publish {
		now := time.Now()
		article.PublishedAt = &now
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	if err := uow.News().Create(c.Request.Context(), article); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"article": article})
}
