package auth

import (
	"net/http"
	"time"

	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	secure  bool
}

func NewHandler(s Service, secureCookies bool) *Handler {
	return &Handler{service: s, secure: secureCookies}
}

func (h *Handler) Exchange(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.ExchangeSession(c.Request.Context(), req.IDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logout success.", nil)
}
