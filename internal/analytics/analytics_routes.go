package analytics

import (
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(auth, middleware.RBACAuthorize(rbacService, rbac.ResourceStats, rbac.ActionRead))
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/stats/export", h.Export)
		dashboard.GET("/active-staff", h.GetActiveStaff)
	}
}
