package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"arena.backend/internal/infrastructure/models"
	"arena.backend/internal/interfaces/http/middleware"
)

func newNewsRouter(t *testing.T, authorID uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	factory, db := newTestFactory(t)
	h := NewNewsHandler(factory)

	r := gin.New()
	r.GET("/news", h.ListNews)
	r.GET("/news/:slug", h.GetArticle)
	r.POST("/admin/news", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, authorID)
		c.Next()
	}, h.CreateArticle)
	return r, db
}

func seedAuthor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u := &models.User{Email: "editor@example.com", Username: "editor", PasswordHash: "x", Role: "MODERATOR"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestNewsHandler_CreateAndGet(t *testing.T) {
	r, db := newNewsRouter(t, 1)
	author := seedAuthor(t, db)
	require.EqualValues(t, 1, author.ID)

	rec := doJSON(t, r, http.MethodPost, "/admin/news", map[string]interface{}{
		"title":   "Grand Final Recap",
		"body":    "What a series.",
		"publish": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/news/grand-final-recap", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/news/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsHandler_ListPaginates(t *testing.T) {
	r, db := newNewsRouter(t, 1)
	seedAuthor(t, db)

	for i := 0; i < 5; i++ {
		rec := doJSON(t, r, http.MethodPost, "/admin/news", map[string]interface{}{
			"title":   fmt.Sprintf("Patch Notes %d", i),
			"body":    "Details inside.",
			"publish": true,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, r, http.MethodGet, "/news?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 2)

	var meta struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalCount int64 `json:"totalCount"`
		TotalPages int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(body["pagination"], &meta))
	require.Equal(t, 1, meta.Page)
	require.EqualValues(t, 5, meta.TotalCount)
	require.Equal(t, 3, meta.TotalPages)

	// no limit returns everything
	rec = doJSON(t, r, http.MethodGet, "/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 5)

	// draft stays hidden
	rec = doJSON(t, r, http.MethodPost, "/admin/news", map[string]interface{}{
		"title": "Unreleased Scoop",
		"body":  "Not yet.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/news", nil)
	body = decodeBody(t, rec)
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 5)
}
