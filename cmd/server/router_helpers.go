package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"arena.backend/internal/interfaces/http/middleware"
)

// applyCORSMiddleware reflects the request origin. Credentials stay enabled
// so browser clients can send the auth cookie.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "arena-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", middleware.MetricsHandler())
}
