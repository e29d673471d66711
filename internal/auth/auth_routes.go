package auth

import (
	"shift-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/session", middleware.RateLimitByIP(0.2, 5), handler.Exchange)
		auth.POST("/logout", handler.Logout)
	}
}
