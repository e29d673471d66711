package organization

import (
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	org := r.Group("/organization")
	org.Use(auth)
	{
		org.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceOrganization, rbac.ActionRead), h.Get)
		org.PUT("/geofence", middleware.RBACAuthorize(rbacService, rbac.ResourceOrganization, rbac.ActionUpdate), h.UpdateGeoFence)
	}
}
