package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/internal/usecases"
)

// MatchHandler serves fixtures and results
type MatchHandler struct {
	matchUsecase *usecases.MatchUsecase
}

func NewMatchHandler(matchUsecase *usecases.MatchUsecase) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase}
}

// ListMatches returns a tournament's fixtures in bracket order.
// GET /api/v1/tournaments/:slug/matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	items, err := h.matchUsecase.ListByTournamentSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ScheduleMatch creates a fixture.
// POST /api/v1/admin/tournaments/:id/matches
func (h *MatchHandler) ScheduleMatch(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ScheduleMatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	match, err := h.matchUsecase.ScheduleMatch(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"match": match})
}

// ReportResult records a final score and updates both teams' records.
// POST /api/v1/admin/matches/:id/result
func (h *MatchHandler) ReportResult(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.ReportResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	match, err := h.matchUsecase.ReportResult(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"match": match})
}

// CancelMatch voids a scheduled fixture.
// POST /api/v1/admin/matches/:id/cancel
func (h *MatchHandler) CancelMatch(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.matchUsecase.CancelMatch(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "match cancelled"})
}
