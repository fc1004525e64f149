package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domainrepos "arena.backend/internal/domain/repositories"
	"arena.backend/internal/infrastructure/models"
	"arena.backend/internal/infrastructure/repositories"
	"arena.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	m.Run()
}

func newTestFactory(t *testing.T) (domainrepos.UnitOfWorkFactory, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate schema")
	return repositories.NewUnitOfWorkFactory(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
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

func seedProduct(t *testing.T, db *gorm.DB, slug string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: slug, Slug: slug, PriceCents: 2500, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(p).Error)
	return p
}
