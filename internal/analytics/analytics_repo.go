package analytics

import (
	"context"
	"time"

	"shift-tracker/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	FindShiftsInRange(ctx context.Context, organizationID string, from, to time.Time) ([]ShiftRecord, error)
	FindActiveStaff(ctx context.Context, organizationID string) ([]ActiveStaffRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindShiftsInRange(ctx context.Context, organizationID string, from, to time.Time) ([]ShiftRecord, error) {
	var rows []ShiftRecord
	err := r.db.WithContext(ctx).
		Table("shifts AS s").
		Select("s.id AS shift_id, s.user_id, u.email, s.clock_in, s.clock_out").
		Joins("JOIN users u ON u.id = s.user_id").
		Scopes(tenant.ScopeColumn("u.organization_id", organizationID)).
		Where("s.clock_in >= ? AND s.clock_in <= ?", from, to).
		Order("s.clock_in ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindActiveStaff(ctx context.Context, organizationID string) ([]ActiveStaffRecord, error) {
	var rows []ActiveStaffRecord
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id AS user_id, u.email, u.role, s.id AS shift_id, s.clock_in").
		Joins("JOIN shifts s ON s.user_id = u.id AND s.clock_out IS NULL").
		Scopes(tenant.ScopeColumn("u.organization_id", organizationID)).
		Order("s.clock_in ASC").
		Scan(&rows).Error
	return rows, err
}
