package events

import "time"

const ShiftLifecycleTopic = "shift.lifecycle.v1"

const (
	ShiftClockedIn  = "shift.clocked_in"
	ShiftClockedOut = "shift.clocked_out"
)

// ShiftLifecycleEvent is published through the outbox whenever a shift opens
// or closes. ClockOut is nil for shift.clocked_in.
type ShiftLifecycleEvent struct {
	EventType      string     `json:"event_type"`
	ShiftID        string     `json:"shift_id"`
	UserID         string     `json:"user_id"`
	OrganizationID string     `json:"organization_id"`
	ClockIn        time.Time  `json:"clock_in"`
	ClockOut       *time.Time `json:"clock_out"`
	OccurredAt     time.Time  `json:"occurred_at"`
}
