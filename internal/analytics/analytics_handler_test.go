package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shift-tracker/internal/analytics"
	analyticserrors "shift-tracker/internal/analytics/errors"
	analyticsMock "shift-tracker/internal/analytics/mock"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(target string, identity domain.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	middleware.SetIdentity(c, identity)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestHandler_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsMock.NewMockService(ctrl)
	h := analytics.NewHandler(svc)

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().GetDashboardStats(gomock.Any(), manager).
			Return(analytics.ComputeStats(weekOfShifts(), now, time.UTC), nil)

		c, w := newTestContext("/dashboard/stats", manager)
		h.GetStats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"daily_stats"`)
		assert.Contains(t, w.Body.String(), `"email":"carer@example.org","total_hours":8`)
	})

	t.Run("care worker", func(t *testing.T) {
		svc.EXPECT().GetDashboardStats(gomock.Any(), carer).
			Return(analytics.DashboardStats{}, analyticserrors.ErrManagerOnly)

		c, w := newTestContext("/dashboard/stats", carer)
		h.GetStats(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_GetActiveStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsMock.NewMockService(ctrl)
	h := analytics.NewHandler(svc)

	svc.EXPECT().GetActiveStaff(gomock.Any(), manager).Return([]analytics.ActiveStaffResponse{
		{UserID: "u-1", Email: "late@example.org", Role: domain.RoleCareWorker, ShiftID: "s-1", ClockIn: now, ElapsedHours: 1.5},
	}, nil)

	c, w := newTestContext("/dashboard/active-staff", manager)
	h.GetActiveStaff(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"elapsed_hours":1.5`)
}

func TestHandler_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analyticsMock.NewMockService(ctrl)
	h := analytics.NewHandler(svc)

	svc.EXPECT().ExportDashboard(gomock.Any(), manager).
		Return([]byte("PK"), "dashboard_2026-03-05_2026-03-11.xlsx", nil)

	c, w := newTestContext("/dashboard/stats/export", manager)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="dashboard_2026-03-05_2026-03-11.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}
