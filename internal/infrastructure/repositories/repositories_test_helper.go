package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"arena.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate schema")
	return db
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

func seedUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Username: username, PasswordHash: "x", Role: "USER"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedTournament(t *testing.T, db *gorm.DB, gameID uint, slug string, maxTeams int) *models.Tournament {
	t.Helper()
	now := time.Now()
	tr := &models.Tournament{
		Title:          slug,
		Slug:           slug,
		GameID:         gameID,
		Status:         "REGISTRATION",
		MaxTeams:       maxTeams,
		RegistrationBy: now.Add(24 * time.Hour),
		StartsAt:       now.Add(48 * time.Hour),
	}
	require.NoError(t, db.Create(tr).Error)
	return tr
}

func seedProduct(t *testing.T, db *gorm.DB, slug string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: slug, Slug: slug, PriceCents: 1999, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(p).Error)
	return p
}
