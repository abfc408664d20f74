// Package tvt computes the time-for-time balance: hours banked in lieu
// of overtime pay, later taken as paid time off.
package tvt

import (
	"go-urenstaat/internal/shift"
)

// Balance is the time-for-time section of a timesheet report.
type Balance struct {
	HoursSaved      float64 `json:"hours_saved"`
	HoursUsed       float64 `json:"hours_used"`
	HoursConverted  float64 `json:"hours_converted"`
	MonthEndBalance float64 `json:"month_end_balance"`
}

// CalculateBalance folds the year's time-for-time shifts into a
// balance. Positive hours are banked, negative hours are taken. When
// upToMonth is 1..12 only shifts through that month count and the
// month-end balance is filled; 0 means the whole year with no
// month-end snapshot.
//
// Converted hours are always zero. Conversion of stale balances into
// paid-out wages has no agreed business rule yet.
func CalculateBalance(shifts []shift.Shift, upToMonth int) Balance {
	var saved, used float64
	for _, s := range shifts {
		if s.Code != shift.CodeTimeForTime {
			continue
		}
		if upToMonth >= 1 && upToMonth <= 12 && int(s.ShiftDate.Month()) > upToMonth {
			continue
		}
		h := s.Hours()
		if h > 0 {
			saved += h
		} else {
			used += -h
		}
	}

	b := Balance{
		HoursSaved:     saved,
		HoursUsed:      used,
		HoursConverted: 0,
	}
	if upToMonth >= 1 && upToMonth <= 12 {
		b.MonthEndBalance = saved - used
	}
	return b
}
