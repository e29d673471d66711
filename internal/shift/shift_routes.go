package shift

import (
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Mutations carries the per-user middleware applied to clock-in and clock-out
// (rate limiting and idempotency), in order.
type Mutations []gin.HandlerFunc

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	mutations Mutations,
) {
	canRead := middleware.RBACAuthorize(rbacService, rbac.ResourceShifts, rbac.ActionRead)
	canWrite := middleware.RBACAuthorize(rbacService, rbac.ResourceShifts, rbac.ActionWrite)
	canReadAny := middleware.RBACAuthorize(rbacService, rbac.ResourceShifts, rbac.ActionReadAny)

	shifts := r.Group("/shifts")
	shifts.Use(auth)
	{
		shifts.GET("", canRead, h.GetMine)
		shifts.GET("/current", canRead, h.GetCurrent)
		shifts.POST("/clock-in", mutations.chain(canWrite, h.ClockIn)...)
		shifts.POST("/:id/clock-out", mutations.chain(canWrite, h.ClockOut)...)
	}

	r.GET("/users/:id/shifts", auth, canReadAny, h.GetByUser)
}

func (m Mutations) chain(authorize, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(m)+2)
	chain = append(chain, authorize)
	chain = append(chain, m...)
	return append(chain, handler)
}
