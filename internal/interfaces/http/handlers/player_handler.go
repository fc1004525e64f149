package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/internal/interfaces/http/middleware"
	"arena.backend/internal/interfaces/http/response"
)

// PlayerHandler serves player profiles
type PlayerHandler struct {
	uowFactory repositories.UnitOfWorkFactory
}

func NewPlayerHandler(uowFactory repositories.UnitOfWorkFactory) *PlayerHandler {
	return &PlayerHandler{uowFactory: uowFactory}
}

// GetPlayer returns a player profile with earned achievements.
// GET /api/v1/players/:nickname
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	player, err := uow.Players().GetByNickname(c.Request.Context(), c.Param("nickname"))
	if err != nil {
		response.Error(c, err)
		return
	}

	achievements, err := uow.Achievements().ListByPlayer(c.Request.Context(), player.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"player":       player,
		"achievements": achievements,
	})
}

// UpdateMyProfile edits the caller's own player profile.
// PUT /api/v1/players/me
func (h *PlayerHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.UpdatePlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	player, err := uow.Players().GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	player.Nickname = input.Nickname
	player.AvatarURL = null.NewString(input.AvatarURL, input.AvatarURL != "")
	player.Country = null.NewString(input.Country, input.Country != "")

	if err := uow.Players().Update(c.Request.Context(), player); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"player": player})
}
