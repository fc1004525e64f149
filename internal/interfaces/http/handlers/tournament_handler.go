package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/domain/entities"
	domainerrors "arena.backend/internal/domain/errors"
	"arena.backend/internal/interfaces/http/response"
	"arena.backend/internal/usecases"
)

// TournamentHandler drives the tournament lifecycle over HTTP
type TournamentHandler struct {
	tournamentUsecase *usecases.TournamentUsecase
}

func NewTournamentHandler(tournamentUsecase *usecases.TournamentUsecase) *TournamentHandler {
	return &TournamentHandler{tournamentUsecase: tournamentUsecase}
}

// ListUpcoming returns tournaments that have not started yet.
// GET /api/v1/tournaments
func (h *TournamentHandler) ListUpcoming(c *gin.Context) {
	items, err := h.tournamentUsecase.ListUpcoming(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetTournament returns a tournament with its registrations.
// GET /api/v1/tournaments/:slug
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	tournament, registrations, err := h.tournamentUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"tournament":    tournament,
		"registrations": registrations,
	})
}

// CreateTournament creates a DRAFT tournament.
// POST /api/v1/admin/tournaments
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var input entities.CreateTournamentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tournament, err := h.tournamentUsecase.CreateTournament(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tournament": tournament})
}

// OpenRegistration opens a draft tournament for entries.
// POST /api/v1/admin/tournaments/:id/open
func (h *TournamentHandler) OpenRegistration(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.tournamentUsecase.OpenRegistration(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "registration open"})
}

// RegisterTeam enters a team into the tournament.
// POST /api/v1/tournaments/:id/registrations
func (h *TournamentHandler) RegisterTeam(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RegisterTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	registration, err := h.tournamentUsecase.RegisterTeam(c.Request.Context(), id, input.TeamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"registration": registration})
}

// ConfirmRegistration promotes a pending entry.
// POST /api/v1/admin/registrations/:id/confirm
func (h *TournamentHandler) ConfirmRegistration(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.tournamentUsecase.ConfirmRegistration(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "registration confirmed"})
}

// CancelRegistration withdraws an entry.
// POST /api/v1/registrations/:id/cancel
func (h *TournamentHandler) CancelRegistration(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.tournamentUsecase.CancelRegistration(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "registration cancelled"})
}

// StartTournament moves a tournament to LIVE.
// POST /api/v1/admin/tournaments/:id/start
func (h *TournamentHandler) StartTournament(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.tournamentUsecase.StartTournament(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "tournament started"})
}

// FinalizeTournament closes a LIVE tournament.
// POST /api/v1/admin/tournaments/:id/finalize
func (h *TournamentHandler) FinalizeTournament(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.tournamentUsecase.FinalizeTournament(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "tournament finished"})
}
