package user

import (
	"net/http"
	"strconv"

	"shift-tracker/internal/middleware"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	return &Handler{service: service, logger: logger.Named("user.handler")}
}

func (h *Handler) GetMe(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	actor := middleware.GetIdentity(c)

	resp, err := h.service.GetAllByOrganization(c.Request.Context(), actor)
	if err != nil {
		h.logger.Debug("list users rejected", zap.String("user_id", actor.UserID), zap.Error(err))
		response.FromError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	rows, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}
