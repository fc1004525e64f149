package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "arena.backend/internal/domain/errors"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.BadRequest("invalid " + name)
	}
	return uint(id), nil
}
