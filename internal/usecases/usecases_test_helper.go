package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainrepos "arena.backend/internal/domain/repositories"
	"arena.backend/internal/infrastructure/models"
	"arena.backend/internal/infrastructure/repositories"
)

func newTestFactory(t *testing.T) (domainrepos.UnitOfWorkFactory, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate schema")
	return repositories.NewUnitOfWorkFactory(db), db
}

func seedGame(t *testing.T, db *gorm.DB, slug string) *models.Game {
	t.Helper()
	g := &models.Game{Name: slug, Slug: slug, Genre: "fps", IsActive: true}
	require.NoError(t, db.Create(g).Error)
	return g
}

func seedTeam(t *testing.T, db *gorm.DB, gameID uint, slug string) *models.Team {
	t.Helper()
	tm := &models.Team{Name: slug, Slug: slug, GameID: gameID, IsActive: true}
	require.NoError(t, db.Create(tm).Error)
	return tm
}

func seedTournament(t *testing.T, db *gorm.DB, gameID uint, slug string, status string, maxTeams int) *models.Tournament {
	t.Helper()
	now := time.Now()
	tr := &models.Tournament{
		Title:          slug,
		Slug:           slug,
		GameID:         gameID,
		Status:         status,
		MaxTeams:       maxTeams,
		RegistrationBy: now.Add(24 * time.Hour),
		StartsAt:       now.Add(48 * time.Hour),
	}
	require.NoError(t, db.Create(tr).Error)
	return tr
}

func seedRegistration(t *testing.T, db *gorm.DB, tournamentID, teamID uint, status string) *models.Registration {
	t.Helper()
	reg := &models.Registration{TournamentID: tournamentID, TeamID: teamID, Status: status}
	require.NoError(t, db.Create(reg).Error)
	return reg
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, stock int, active bool) *models.Product {
	t.Helper()
	p := &models.Product{Name: slug, Slug: slug, PriceCents: 2500, Stock: stock, IsActive: active}
	require.NoError(t, db.Create(p).Error)
	return p
}
