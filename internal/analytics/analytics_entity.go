package analytics

import (
	"time"

	"github.com/google/uuid"
)

// ShiftRecord is a shift joined with the email of its worker.
type ShiftRecord struct {
	ShiftID  uuid.UUID  `gorm:"column:shift_id"`
	UserID   uuid.UUID  `gorm:"column:user_id"`
	Email    string     `gorm:"column:email"`
	ClockIn  time.Time  `gorm:"column:clock_in"`
	ClockOut *time.Time `gorm:"column:clock_out"`
}

// ActiveStaffRecord is a worker together with their currently open shift.
type ActiveStaffRecord struct {
	UserID  uuid.UUID `gorm:"column:user_id"`
	Email   string    `gorm:"column:email"`
	Role    string    `gorm:"column:role"`
	ShiftID uuid.UUID `gorm:"column:shift_id"`
	ClockIn time.Time `gorm:"column:clock_in"`
}
