package rbac

import (
	"net/http"
	"strings"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/middleware"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Check answers whether the caller's role may perform resource:action.
func (h *Handler) Check(c *gin.Context) {
	actor := middleware.GetIdentity(c)

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(domain.EnforceRequest{
		Role:     actor.Role,
		Resource: strings.TrimSpace(req.Resource),
		Action:   strings.TrimSpace(req.Action),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CheckResponse{Allowed: allowed}, nil)
}

func (h *Handler) MyPermissions(c *gin.Context) {
	perms, err := h.service.PermissionsForRole(middleware.GetIdentity(c).Role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}
