package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/pkg/utils"
)

// GameHandler serves the game catalogue
type GameHandler struct {
	uowFactory repositories.UnitOfWorkFactory
}

func NewGameHandler(uowFactory repositories.UnitOfWorkFactory) *GameHandler {
	return &GameHandler{uowFactory: uowFactory}
}

// ListGames returns active disciplines.
// GET /api/v1/games
func (h *GameHandler) ListGames(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	items, err := uow.Games().ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetGame returns one game by slug.
// GET /api/v1/games/:slug
func (h *GameHandler) GetGame(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	game, err := uow.Games().GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"game": game})
}

// CreateGame adds a discipline.
// POST /api/v1/admin/games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input entities.CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	game := &entities.Game{
		Name:     input.Name,
		Slug:     utils.Slugify(input.Name),
		Genre:    input.Genre,
		IsActive: true,
	}
	if input.IsActive != nil {
		game.IsActive = *input.IsActive
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	if err := uow.Games().Create(c.Request.Context(), game); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"game": game})
}
