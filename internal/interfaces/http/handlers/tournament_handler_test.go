package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"arena.backend/internal/domain/entities"
	"arena.backend/internal/infrastructure/models"
	"arena.backend/internal/usecases"
)

func newTournamentRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	factory, db := newTestFactory(t)
	h := NewTournamentHandler(usecases.NewTournamentUsecase(factory))
	r := gin.New()
	r.GET("/tournaments", h.ListUpcoming)
	r.GET("/tournaments/:slug", h.GetTournament)
	r.POST("/tournaments", h.CreateTournament)
	r.POST("/tournaments/:id/open", h.OpenRegistration)
	r.POST("/tournaments/:id/registrations", h.RegisterTeam)
	r.POST("/registrations/:id/confirm", h.ConfirmRegistration)
	r.POST("/tournaments/:id/start", h.StartTournament)
	return r, db
}

func TestTournamentHandler_LifecycleOverHTTP(t *testing.T) {
	r, db := newTournamentRouter(t)
	g := seedGame(t, db, "cs2")
	t1 := seedTeam(t, db, g.ID, "navi")
	t2 := seedTeam(t, db, g.ID, "spirit")

	now := time.Now()
	rec := doJSON(t, r, http.MethodPost, "/tournaments", entities.CreateTournamentInput{
		Title:          "Winter Clash",
		GameID:         g.ID,
		MaxTeams:       8,
		RegistrationBy: now.Add(24 * time.Hour),
		StartsAt:       now.Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Tournament entities.Tournament `json:"tournament"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "winter-clash", created.Tournament.Slug)

	rec = doJSON(t, r, http.MethodPost, "/tournaments/1/open", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/tournaments/1/registrations", entities.RegisterTeamInput{TeamID: t1.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/tournaments/1/registrations", entities.RegisterTeamInput{TeamID: t2.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate entry conflicts.
	rec = doJSON(t, r, http.MethodPost, "/tournaments/1/registrations", entities.RegisterTeamInput{TeamID: t1.ID})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/registrations/1/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/registrations/2/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/tournaments/1/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/tournaments/winter-clash", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Tournament    entities.Tournament    `json:"tournament"`
		Registrations []entities.Registration `json:"registrations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, entities.TournamentStatusLive, got.Tournament.Status)
	require.Len(t, got.Registrations, 2)
}

func TestTournamentHandler_RegisterClosedTournament(t *testing.T) {
	r, db := newTournamentRouter(t)
	g := seedGame(t, db, "cs2")
	team := seedTeam(t, db, g.ID, "navi")
	tr := &models.Tournament{
		Title: "Closed Cup", Slug: "closed-cup", GameID: g.ID, Status: "DRAFT",
		MaxTeams: 8, RegistrationBy: time.Now().Add(time.Hour), StartsAt: time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, db.Create(tr).Error)

	rec := doJSON(t, r, http.MethodPost, "/tournaments/1/registrations", entities.RegisterTeamInput{TeamID: team.ID})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestTournamentHandler_BadInputs(t *testing.T) {
	r, db := newTournamentRouter(t)
	g := seedGame(t, db, "cs2")

	// Missing required fields.
	rec := doJSON(t, r, http.MethodPost, "/tournaments", gin.H{"title": "X"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Deadline after start.
	now := time.Now()
	rec = doJSON(t, r, http.MethodPost, "/tournaments", entities.CreateTournamentInput{
		Title:          "Backwards Cup",
		GameID:         g.ID,
		MaxTeams:       8,
		RegistrationBy: now.Add(48 * time.Hour),
		StartsAt:       now.Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Garbage ID parameter.
	rec = doJSON(t, r, http.MethodPost, "/tournaments/zero/open", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTournamentHandler_ListUpcoming(t *testing.T) {
	r, db := newTournamentRouter(t)
	g := seedGame(t, db, "cs2")
	future := &models.Tournament{
		Title: "Soon", Slug: "soon", GameID: g.ID, Status: "REGISTRATION",
		MaxTeams: 8, RegistrationBy: time.Now().Add(time.Hour), StartsAt: time.Now().Add(2 * time.Hour),
	}
	past := &models.Tournament{
		Title: "Gone", Slug: "gone", GameID: g.ID, Status: "FINISHED",
		MaxTeams: 8, RegistrationBy: time.Now().Add(-2 * time.Hour), StartsAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(future).Error)
	require.NoError(t, db.Create(past).Error)

	rec := doJSON(t, r, http.MethodGet, "/tournaments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []entities.Tournament `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	require.Equal(t, "soon", body.Items[0].Slug)
}
