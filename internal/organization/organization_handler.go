package organization

import (
	"net/http"

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

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateGeoFence(c *gin.Context) {
	actor := middleware.GetIdentity(c)

	var req UpdateGeoFenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateGeoFence(c.Request.Context(), actor, actor.OrganizationID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
