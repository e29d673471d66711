package auth_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shift-tracker/internal/auth"
	autherrors "shift-tracker/internal/auth/errors"
	authMock "shift-tracker/internal/auth/mock"
	"shift-tracker/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(h *auth.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/session", h.Exchange)
	r.POST("/auth/logout", h.Logout)
	return r
}

func TestHandler_Exchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	router := setupAuthRouter(auth.NewHandler(mockService, false))

	t.Run("success sets cookie", func(t *testing.T) {
		mockService.EXPECT().
			ExchangeSession(gomock.Any(), "id-token").
			Return(auth.SessionResponse{
				AccessToken: "access",
				ExpiresAt:   time.Now().Add(time.Hour),
				User:        user.UserResponse{ID: "u-1", Role: "MANAGER"},
			}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewBufferString(`{"id_token":"id-token"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=access")
		assert.Contains(t, w.Body.String(), `"access_token":"access"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		mockService.EXPECT().
			ExchangeSession(gomock.Any(), "bad").
			Return(auth.SessionResponse{}, autherrors.ErrInvalidIdentityToken)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewBufferString(`{"id_token":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupAuthRouter(auth.NewHandler(authMock.NewMockService(ctrl), false))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
