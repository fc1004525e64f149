package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/domain/repositories"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/pkg/utils"
)

// TeamHandler serves team pages and the leaderboard
type TeamHandler struct {
	uowFactory repositories.UnitOfWorkFactory
}

func NewTeamHandler(uowFactory repositories.UnitOfWorkFactory) *TeamHandler {
	return &TeamHandler{uowFactory: uowFactory}
}

// ListTeams returns active teams.
// GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	items, err := uow.Teams().ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetTeam returns a team with its roster.
// GET /api/v1/teams/:slug
func (h *TeamHandler) GetTeam(c *gin.Context) {
	uow := h.uowFactory.New()
	defer uow.Close()

	team, err := uow.Teams().GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	roster, err := uow.Players().ListByTeam(c.Request.Context(), team.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"team":   team,
		"roster": roster,
	})
}

// Leaderboard returns the best-ranked active teams.
// GET /api/v1/teams/leaderboard
func (h *TeamHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	items, err := uow.Teams().TopRanked(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// CreateTeam registers a roster.
// POST /api/v1/admin/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	if _, err := uow.Games().GetByID(c.Request.Context(), input.GameID); err != nil {
		response.Error(c, err)
		return
	}

	team := &entities.Team{
		Name:     input.Name,
		Slug:     utils.Slugify(input.Name),
		GameID:   input.GameID,
		LogoURL:  null.NewString(input.LogoURL, input.LogoURL != ""),
		IsActive: true,
	}
	if err := uow.Teams().Create(c.Request.Context(), team); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"team": team})
}

// UpdateTeam edits a roster.
// PUT /api/v1/admin/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	uow := h.uowFactory.New()
	defer uow.Close()

	team, err := uow.Teams().GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	team.Name = input.Name
	team.LogoURL = null.NewString(input.LogoURL, input.LogoURL != "")
	if input.IsActive != nil {
		team.IsActive = *input.IsActive
	}

	if err := uow.Teams().Update(c.Request.Context(), team); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"team": team})
}
