package shift

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

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.ClockIn(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	// The body is optional; an empty one means no note.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.FromError(c, apperror.MapValidationError(err))
			return
		}
	}

	res, err := h.service.ClockOut(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetCurrent(c *gin.Context) {
	res, err := h.service.GetCurrent(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	res, err := h.service.GetMine(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByUser(c *gin.Context) {
	res, err := h.service.GetByUser(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
