package shift

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"

	// OpenShiftConstraint is the partial unique index on shifts(user_id)
	// WHERE clock_out IS NULL.
	OpenShiftConstraint = "uq_shifts_open_per_user"
)

// Shift is one work interval. A nil ClockOut means the shift is open; once set
// the row is never modified again.
type Shift struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_shifts_user_clock_in,priority:1"`
	ClockIn          time.Time  `gorm:"column:clock_in;not null;index:idx_shifts_user_clock_in,priority:2,sort:desc;index:idx_shifts_clock_in"`
	ClockInLatitude  *float64   `gorm:"column:clock_in_latitude"`
	ClockInLongitude *float64   `gorm:"column:clock_in_longitude"`
	ClockInNote      *string    `gorm:"column:clock_in_note;type:text"`
	ClockOut         *time.Time `gorm:"column:clock_out;check:chk_shifts_clock_out_after_in,clock_out IS NULL OR clock_out >= clock_in"`
	ClockOutNote     *string    `gorm:"column:clock_out_note;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;not null;default:now()"`
}

func (Shift) TableName() string {
	return "shifts"
}

func (s Shift) IsOpen() bool {
	return s.ClockOut == nil
}

// DurationHours is the elapsed wall-clock time of a closed shift.
func (s Shift) DurationHours() (float64, bool) {
	if s.ClockOut == nil {
		return 0, false
	}
	return float64(s.ClockOut.Sub(s.ClockIn).Milliseconds()) / 3_600_000, true
}
