package shift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is one booking for one driver on one date. Records are written
// once (by the rides consumer or the API) and are immutable input to the
// timesheet engine.
type Shift struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DriverID  uuid.UUID `gorm:"column:driver_id;type:uuid;not null;index"`
	ShiftDate time.Time `gorm:"column:shift_date;type:date;not null;index"`

	// Code is the mapped day type, RawCode the code as delivered by the
	// planning system. RawCode is kept because one kilometers rule still
	// keys on the legacy numeric code range.
	Code    Code   `gorm:"column:code;type:varchar(30);not null"`
	RawCode string `gorm:"column:raw_code;type:varchar(60);not null"`
	Option  Option `gorm:"column:option;type:varchar(30);not null;default:''"`

	// Times as decimal hours on a 0..24 scale, nil when the day type has
	// no clock times (stand-over, sick, vacation).
	StartHour *float64 `gorm:"column:start_hour"`
	EndHour   *float64 `gorm:"column:end_hour"`

	BreakHours      float64 `gorm:"column:break_hours;not null;default:0"`
	CorrectionHours float64 `gorm:"column:correction_hours;not null;default:0"`
	Kilometers      float64 `gorm:"column:kilometers;not null;default:0"`
	FTEPercent      float64 `gorm:"column:fte_percent;not null;default:100"`

	Remarks     *string `gorm:"column:remarks;type:text"`
	ExternalRef *string `gorm:"column:external_ref;type:varchar(100);uniqueIndex"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Shift) TableName() string {
	return "shifts"
}

// Hours returns the worked span of the booking: the midnight-aware
// distance between start and end, minus break, plus the manual
// correction. Bookings without clock times contribute the correction
// only, which is how vacation, sick and time-for-time hours are booked.
func (s Shift) Hours() float64 {
	span := 0.0
	if s.StartHour != nil && s.EndHour != nil {
		start, end := *s.StartHour, *s.EndHour
		if end >= start {
			span = end - start
		} else {
			span = (24 - start) + end
		}
	}
	return span - s.BreakHours + s.CorrectionHours
}

// CrossesMidnight reports whether the booking runs past midnight.
func (s Shift) CrossesMidnight() bool {
	return s.StartHour != nil && s.EndHour != nil && *s.EndHour < *s.StartHour
}

func (s Shift) startOrZero() float64 {
	if s.StartHour == nil {
		return 0
	}
	return *s.StartHour
}

func (s Shift) endOrZero() float64 {
	if s.EndHour == nil {
		return 0
	}
	return *s.EndHour
}

// Start and End expose the clock times with nil folded to 0, the
// convention the legacy formulas are written against.
func (s Shift) Start() float64 { return s.startOrZero() }
func (s Shift) End() float64   { return s.endOrZero() }
