package shift

import "time"

type ClockInRequest struct {
	Note      *string  `json:"note" binding:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type ClockOutRequest struct {
	Note *string `json:"note" binding:"omitempty,max=500"`
}

type ShiftResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Status           string     `json:"status"`
	ClockIn          time.Time  `json:"clock_in"`
	ClockInLatitude  *float64   `json:"clock_in_latitude"`
	ClockInLongitude *float64   `json:"clock_in_longitude"`
	ClockInNote      *string    `json:"clock_in_note"`
	ClockOut         *time.Time `json:"clock_out"`
	ClockOutNote     *string    `json:"clock_out_note"`
	DurationHours    *float64   `json:"duration_hours,omitempty"`
}
