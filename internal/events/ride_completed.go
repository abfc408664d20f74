package events

import "time"

const RideCompletedTopic = "transport.ride.completed.v1"

// RideCompletedEvent is emitted by the planning system when a ride
// execution closes. The consumer turns it into a shift booking.
type RideCompletedEvent struct {
	EventType   string    `json:"event_type"`
	RideID      string    `json:"ride_id"`
	DriverID    string    `json:"driver_id"`
	ServiceCode string    `json:"service_code"`
	ShiftDate   string    `json:"shift_date"` // YYYY-MM-DD
	StartHour   *float64  `json:"start_hour"` // decimal hours 0..24
	EndHour     *float64  `json:"end_hour"`
	BreakHours  float64   `json:"break_hours"`
	Kilometers  float64   `json:"kilometers"`
	OccurredAt  time.Time `json:"occurred_at"`
}
