package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	analyticserrors "shift-tracker/internal/analytics/errors"
	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/clock"
	"shift-tracker/internal/shared/numeric"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Stats are cached for at most StatsCacheTTL. The shift lifecycle consumer
// evicts the entry on every clock-in and clock-out.
const (
	StatsKeyPrefix = "dashboard:stats:"
	StatsCacheTTL  = 60 * time.Second
)

// StatsCacheKey is scoped to the calendar day so buckets never carry over
// midnight.
func StatsCacheKey(organizationID string, now time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s%s:%s", StatsKeyPrefix, organizationID, now.In(loc).Format(dateLayout))
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	GetDashboardStats(ctx context.Context, actor domain.Identity) (DashboardStats, error)
	GetActiveStaff(ctx context.Context, actor domain.Identity) ([]ActiveStaffResponse, error)
	ExportDashboard(ctx context.Context, actor domain.Identity) ([]byte, string, error)
	InvalidateStats(ctx context.Context, organizationID string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	clock  clock.Clock
	loc    *time.Location
	logger *zap.Logger
}

func NewService(
	repo Repository,
	rdb *redis.Client,
	clk clock.Clock,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	if clk == nil {
		clk = clock.New()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		clock:  clk,
		loc:    loc,
		logger: l,
	}
}

func authorizeManager(actor domain.Identity) error {
	if actor.IsAnonymous() {
		return apperror.ErrUnauthorized
	}
	if !actor.IsManager() {
		return analyticserrors.ErrManagerOnly
	}
	return nil
}

func (s *service) GetDashboardStats(ctx context.Context, actor domain.Identity) (DashboardStats, error) {
	if err := authorizeManager(actor); err != nil {
		return DashboardStats{}, err
	}

	now := s.clock.Now()
	cacheKey := StatsCacheKey(actor.OrganizationID, now, s.loc)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("dashboard stats cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		records, err := s.repo.FindShiftsInRange(ctx, actor.OrganizationID, WindowStart(now, s.loc), now)
		if err != nil {
			s.logger.Error("load shifts for dashboard failed",
				zap.String("organization_id", actor.OrganizationID),
				zap.Error(err),
			)
			return nil, err
		}

		stats := ComputeStats(records, now, s.loc)

		if s.rdb != nil {
			if payload, err := json.Marshal(stats); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, StatsCacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard stats cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return stats, nil
	})
	if err != nil {
		return DashboardStats{}, err
	}
	return v.(DashboardStats), nil
}

func (s *service) GetActiveStaff(ctx context.Context, actor domain.Identity) ([]ActiveStaffResponse, error) {
	if err := authorizeManager(actor); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindActiveStaff(ctx, actor.OrganizationID)
	if err != nil {
		s.logger.Error("load active staff failed",
			zap.String("organization_id", actor.OrganizationID),
			zap.Error(err),
		)
		return nil, err
	}

	now := s.clock.Now()
	res := make([]ActiveStaffResponse, len(rows))
	for i, r := range rows {
		elapsed := 0.0
		if now.After(r.ClockIn) {
			elapsed = numeric.Round2(hoursBetween(r.ClockIn, now))
		}
		res[i] = ActiveStaffResponse{
			UserID:       r.UserID.String(),
			Email:        r.Email,
			Role:         r.Role,
			ShiftID:      r.ShiftID.String(),
			ClockIn:      r.ClockIn,
			ElapsedHours: elapsed,
		}
	}
	return res, nil
}

func (s *service) ExportDashboard(ctx context.Context, actor domain.Identity) ([]byte, string, error) {
	stats, err := s.GetDashboardStats(ctx, actor)
	if err != nil {
		return nil, "", err
	}

	data, err := renderWorkbook(stats)
	if err != nil {
		s.logger.Error("render dashboard workbook failed", zap.Error(err))
		return nil, "", analyticserrors.ErrExportFailed
	}

	filename := fmt.Sprintf("dashboard_%s_%s.xlsx",
		stats.WindowStart.Format(dateLayout),
		stats.WindowEnd.Format(dateLayout),
	)
	return data, filename, nil
}

// InvalidateStats drops today's cached dashboard of the organization.
func (s *service) InvalidateStats(ctx context.Context, organizationID string) error {
	if s.rdb == nil {
		return nil
	}
	cacheKey := StatsCacheKey(organizationID, s.clock.Now(), s.loc)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate %s: %w", cacheKey, err)
	}
	return nil
}
