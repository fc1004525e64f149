package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"arena.backend/pkg/logger"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware attaches a unique ID to each request, honoring an
// X-Request-ID header when the caller supplies one. The ID is placed both in
// the gin context and in the request's Go context so logger.WithContext can
// pick it up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
