package user

import (
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /users. Routes that take a user id under /users live
// with the package that owns the resource (see shift.RegisterRoutes).
func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	users := r.Group("/users")
	users.Use(auth)
	{
		users.GET("/me", h.GetMe)
		users.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceUsers, rbac.ActionRead), h.GetAll)
	}
}
