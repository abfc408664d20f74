package events

import "time"

const ShiftRecordedTopic = "transport.shift.recorded.v1"

type ShiftRecordedEvent struct {
	EventType  string    `json:"event_type"`
	ShiftID    string    `json:"shift_id"`
	DriverID   string    `json:"driver_id"`
	ShiftDate  string    `json:"shift_date"`
	Code       string    `json:"code"`
	OccurredAt time.Time `json:"occurred_at"`
}
