package analytics

import "time"

type ActiveStaffResponse struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ShiftID      string    `json:"shift_id"`
	ClockIn      time.Time `json:"clock_in"`
	ElapsedHours float64   `json:"elapsed_hours"`
}
