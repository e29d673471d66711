package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"shift-tracker/internal/analytics"
	analyticserrors "shift-tracker/internal/analytics/errors"
	analyticsMock "shift-tracker/internal/analytics/mock"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/clock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	orgID   = uuid.NewString()
	manager = domain.Identity{UserID: uuid.NewString(), OrganizationID: orgID, Role: domain.RoleManager}
	carer   = domain.Identity{UserID: uuid.NewString(), OrganizationID: orgID, Role: domain.RoleCareWorker}
)

func weekOfShifts() []analytics.ShiftRecord {
	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	return []analytics.ShiftRecord{
		closedShift("carer@example.org", monday, 8*time.Hour),
		openShift("late@example.org", now.Add(-2*time.Hour)),
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	ctx := context.Background()
	key := analytics.StatsCacheKey(orgID, now, time.UTC)
	windowStart := analytics.WindowStart(now, time.UTC)

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := analyticsMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := analytics.NewService(repo, rdb, clock.Fixed(now), time.UTC, zap.NewNop())

		expected := analytics.ComputeStats(weekOfShifts(), now, time.UTC)
		payload, _ := json.Marshal(expected)

		redisMock.ExpectGet(key).RedisNil()
		repo.EXPECT().FindShiftsInRange(ctx, orgID, windowStart, now).Return(weekOfShifts(), nil)
		redisMock.ExpectSet(key, payload, analytics.StatsCacheTTL).SetVal("OK")

		stats, err := svc.GetDashboardStats(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, stats.DailyStats, 7)
		assert.Equal(t, []analytics.StaffHours{{Email: "carer@example.org", TotalHours: 8}}, stats.StaffWeeklyHours)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := analyticsMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := analytics.NewService(repo, rdb, clock.Fixed(now.Add(30*time.Second)), time.UTC, zap.NewNop())

		cached := analytics.ComputeStats(weekOfShifts(), now, time.UTC)
		payload, _ := json.Marshal(cached)
		redisMock.ExpectGet(key).SetVal(string(payload))

		stats, err := svc.GetDashboardStats(ctx, manager)
		require.NoError(t, err)
		assert.Equal(t, cached.StaffWeeklyHours, stats.StaffWeeklyHours)
		// WindowEnd is the instant the cached aggregate was computed at.
		assert.True(t, now.Equal(stats.WindowEnd))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis outage falls back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := analyticsMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := analytics.NewService(repo, rdb, clock.Fixed(now), time.UTC, zap.NewNop())

		payload, _ := json.Marshal(analytics.ComputeStats(nil, now, time.UTC))
		redisMock.ExpectGet(key).SetErr(errors.New("connection refused"))
		repo.EXPECT().FindShiftsInRange(ctx, orgID, windowStart, now).Return(nil, nil)
		redisMock.ExpectSet(key, payload, analytics.StatsCacheTTL).SetErr(errors.New("connection refused"))

		stats, err := svc.GetDashboardStats(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, stats.DailyStats, 7)
	})

	t.Run("without redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := analyticsMock.NewMockRepository(ctrl)
		svc := analytics.NewService(repo, nil, clock.Fixed(now), time.UTC, zap.NewNop())

		repo.EXPECT().FindShiftsInRange(ctx, orgID, windowStart, now).Return(weekOfShifts(), nil)

		stats, err := svc.GetDashboardStats(ctx, manager)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.DailyStats[6].ClockIns)
	})

	t.Run("care worker is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := analytics.NewService(analyticsMock.NewMockRepository(ctrl), nil, clock.Fixed(now), time.UTC, zap.NewNop())

		_, err := svc.GetDashboardStats(ctx, carer)
		assert.ErrorIs(t, err, analyticserrors.ErrManagerOnly)

		_, err = svc.GetDashboardStats(ctx, domain.Identity{})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestService_GetActiveStaff(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := analyticsMock.NewMockRepository(ctrl)
	svc := analytics.NewService(repo, nil, clock.Fixed(now), time.UTC, zap.NewNop())

	userID := uuid.New()
	repo.EXPECT().FindActiveStaff(ctx, orgID).Return([]analytics.ActiveStaffRecord{
		{UserID: userID, Email: "late@example.org", Role: domain.RoleCareWorker, ShiftID: uuid.New(), ClockIn: now.Add(-90 * time.Minute)},
	}, nil)

	staff, err := svc.GetActiveStaff(ctx, manager)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, userID.String(), staff[0].UserID)
	assert.Equal(t, 1.5, staff[0].ElapsedHours)

	_, err = svc.GetActiveStaff(ctx, carer)
	assert.ErrorIs(t, err, analyticserrors.ErrManagerOnly)
}

func TestService_ExportDashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := analyticsMock.NewMockRepository(ctrl)
	svc := analytics.NewService(repo, nil, clock.Fixed(now), time.UTC, zap.NewNop())

	repo.EXPECT().FindShiftsInRange(ctx, orgID, gomock.Any(), now).Return(weekOfShifts(), nil)

	data, filename, err := svc.ExportDashboard(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, "dashboard_2026-03-05_2026-03-11.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Daily")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Date", "Clock-ins", "Average hours"}, rows[0])
	assert.Equal(t, []string{"2026-03-09", "1", "8"}, rows[5])

	staff, err := f.GetRows("Staff")
	require.NoError(t, err)
	assert.Equal(t, []string{"carer@example.org", "8"}, staff[1])
}

func TestService_InvalidateStats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	svc := analytics.NewService(analyticsMock.NewMockRepository(ctrl), rdb, clock.Fixed(now), time.UTC, zap.NewNop())

	redisMock.ExpectDel(analytics.StatsCacheKey(orgID, now, time.UTC)).SetVal(1)
	assert.NoError(t, svc.InvalidateStats(ctx, orgID))

	redisMock.ExpectDel(analytics.StatsCacheKey(orgID, now, time.UTC)).SetErr(errors.New("down"))
	assert.Error(t, svc.InvalidateStats(ctx, orgID))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
