package routes

import (
	"net/http"

	"workhive_backend/internal/auth"
	"workhive_backend/internal/handlers"
	"workhive_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1. The public group carries
// no auth; the authed group requires a valid bearer token.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	public := api.Group("")
	authed := api.Group("", middleware.AuthMiddleware(tokens))

	h.Auth.RegisterRoutes(public)
	h.User.RegisterRoutes(authed)
	h.Job.RegisterRoutes(public, authed)
	h.Application.RegisterRoutes(authed)
	h.Review.RegisterRoutes(public, authed)
	h.Notification.RegisterRoutes(authed)
}
