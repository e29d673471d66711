package analytics

import (
	"fmt"
	"net/http"

	"shift-tracker/internal/middleware"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}

func (h *Handler) GetActiveStaff(c *gin.Context) {
	staff, err := h.service.GetActiveStaff(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, staff, nil)
}

func (h *Handler) Export(c *gin.Context) {
	data, filename, err := h.service.ExportDashboard(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
